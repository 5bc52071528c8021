// Package profiles stores saved network profiles on disk.
//
// A profile remembers everything about a network except its password: SSID,
// security kind, the hidden flag, and preferred QR styling. Profiles let a
// user regenerate a code for a known network without retyping flags.
//
// Passwords are NEVER written to the profile file. A Wi-Fi QR payload embeds
// the password by design, but persisting credentials in a world-readable
// config tree is a different risk; they are always supplied per invocation.
//
// The registry lives at the OS-appropriate config directory
// (e.g. ~/.config/wifi-qr/profiles.yaml on Linux) and is written atomically.
package profiles
