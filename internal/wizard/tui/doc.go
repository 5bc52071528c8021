// Package tui implements the interactive wizard for the wifi-qr CLI.
//
// The wizard is a single-screen Bubble Tea model that walks the user through
// building a Wi-Fi QR code step by step, following the Elm architecture with
// immutable state updates and a clean Model-Update-View pattern.
//
// # Step Flow
//
// The wizard advances through a fixed sequence, skipping steps that do not
// apply:
//
//  1. SSID: network name entry (bubbles/textinput)
//  2. Security: WPA / WEP / Open menu
//  3. Password: masked entry (skipped for open networks)
//  4. Hidden: broadcast or hidden toggle
//  5. Style: square or circle modules
//  6. Color: palette menu, with an optional custom hex entry step
//  7. Output: terminal rendering or a PNG filename entry step
//  8. Review: summary and confirmation
//
// Enter advances, ESC goes back (honoring skips taken on the way forward),
// and Ctrl+C cancels from anywhere. Fatal validation problems block the
// current step with an inline error; advisory problems (length limits) are
// collected as warnings and shown without blocking.
//
// # Separation of Concerns
//
// The wizard collects configuration only. When the program exits with
// Finished set, the command layer reads Result() and performs all rendering
// and file I/O. Nothing inside the TUI loop touches the filesystem.
//
// # Framework Components
//
//   - bubbles/textinput: SSID, password (masked), hex color, and filename entry
//   - bubbles/help + bubbles/key: context-aware footer key bindings
//   - lipgloss: styling and the shared application container
//
// All steps render through RenderApplicationContainer for consistent chrome:
// bordered panel, application header, and footer help.
package tui
