package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DmitriiSer/wifi-qr-cli/internal/render"
	"github.com/DmitriiSer/wifi-qr-cli/internal/style"
	"github.com/DmitriiSer/wifi-qr-cli/internal/wifi"
)

// Step identifies the current wizard step.
type Step int

const (
	StepSSID Step = iota
	StepSecurity
	StepPassword
	StepHidden
	StepStyle
	StepColor
	StepCustomColor
	StepOutput
	StepFilename
	StepReview
)

// Result is the fully-resolved outcome of a completed wizard run. The
// command layer performs the actual rendering; the wizard itself does no
// I/O beyond the terminal it draws on.
type Result struct {
	Network wifi.NetworkConfig
	Style   style.Kind
	Color   style.ColorSpec
	PNGPath string // empty means render to the terminal
}

// securityOption pairs a menu label with its resolved kind.
type securityOption struct {
	label string
	kind  wifi.SecurityKind
}

var securityOptions = []securityOption{
	{"WPA / WPA2 / WPA3", wifi.SecurityWPA},
	{"WEP (legacy)", wifi.SecurityWEP},
	{"Open (no password)", wifi.SecurityOpen},
}

var hiddenOptions = []string{"No - SSID is broadcast", "Yes - hidden network"}

var styleOptions = []style.Kind{style.Square, style.Circle}

var outputOptions = []string{"Render in this terminal", "Write a PNG image"}

const customColorLabel = "custom hex..."

// wizardKeyMap defines key bindings shown in the help footer
type wizardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k wizardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k wizardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Back, k.Quit},
	}
}

// WizardModel walks the user through building a network QR code step by
// step. It is a single-screen bubbletea model; each step swaps the content
// inside the shared application container.
type WizardModel struct {
	step Step

	// Text inputs
	SSIDInput     textinput.Model
	PasswordInput textinput.Model
	HexInput      textinput.Model
	FileInput     textinput.Model

	// Menu cursors
	SecurityCursor int
	HiddenCursor   int
	StyleCursor    int
	ColorCursor    int
	OutputCursor   int

	// Collected state
	network   wifi.NetworkConfig
	styleKind style.Kind
	color     style.ColorSpec
	pngPath   string
	warnings  []string

	// Inline error for the current step
	errMsg string

	// UI state
	Width  int
	Height int

	// Outcome
	Cancelled bool
	Finished  bool

	Help help.Model
	Keys wizardKeyMap
}

// NewWizardModel creates a wizard pre-filled with the given defaults.
// Defaults typically come from a saved profile or command-line flags.
func NewWizardModel(defaults Result) WizardModel {
	ssidInput := textinput.New()
	ssidInput.Placeholder = "My Network"
	ssidInput.CharLimit = 64
	ssidInput.Width = 40
	ssidInput.SetValue(defaults.Network.SSID)
	ssidInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "Enter password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.CharLimit = 63
	passwordInput.Width = 40

	hexInput := textinput.New()
	hexInput.Placeholder = "#0066CC"
	hexInput.CharLimit = 7
	hexInput.Width = 40

	fileInput := textinput.New()
	fileInput.Placeholder = "wifi-qr.png"
	fileInput.CharLimit = 255
	fileInput.Width = 40

	keys := wizardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	m := WizardModel{
		step:          StepSSID,
		SSIDInput:     ssidInput,
		PasswordInput: passwordInput,
		HexInput:      hexInput,
		FileInput:     fileInput,
		network:       defaults.Network,
		styleKind:     defaults.Style,
		color:         defaults.Color,
		Help:          help.New(),
		Keys:          keys,
	}
	if m.color.Hex == "" {
		m.color = style.DefaultColor()
	}

	// Position the menu cursors on the defaults
	for i, opt := range securityOptions {
		if opt.kind == defaults.Network.Security {
			m.SecurityCursor = i
		}
	}
	if defaults.Network.Hidden {
		m.HiddenCursor = 1
	}
	for i, k := range styleOptions {
		if k == defaults.Style {
			m.StyleCursor = i
		}
	}

	return m
}

// Result returns the collected configuration. Only meaningful when
// Finished is true.
func (m WizardModel) Result() Result {
	return Result{
		Network: m.network,
		Style:   m.styleKind,
		Color:   m.color,
		PNGPath: m.pngPath,
	}
}

// Warnings returns advisory messages collected along the way (length
// limits, fallback substitutions).
func (m WizardModel) Warnings() []string {
	return m.warnings
}

// Init implements tea.Model
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Cancelled = true
			return m, tea.Quit

		case "esc":
			return m.goBack()

		case "enter":
			return m.advance()

		case "up", "k":
			if !m.onTextInput() {
				m.moveCursor(-1)
				return m, nil
			}

		case "down", "j":
			if !m.onTextInput() {
				m.moveCursor(1)
				return m, nil
			}
		}
	}

	// Route remaining keys to the active text input
	var cmd tea.Cmd
	switch m.step {
	case StepSSID:
		m.SSIDInput, cmd = m.SSIDInput.Update(msg)
	case StepPassword:
		m.PasswordInput, cmd = m.PasswordInput.Update(msg)
	case StepCustomColor:
		m.HexInput, cmd = m.HexInput.Update(msg)
	case StepFilename:
		m.FileInput, cmd = m.FileInput.Update(msg)
	}
	return m, cmd
}

// onTextInput reports whether the current step captures free-form typing,
// in which case j/k must reach the input instead of moving a cursor.
func (m WizardModel) onTextInput() bool {
	switch m.step {
	case StepSSID, StepPassword, StepCustomColor, StepFilename:
		return true
	default:
		return false
	}
}

// moveCursor moves the active menu cursor by delta with clamping.
func (m *WizardModel) moveCursor(delta int) {
	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}

	switch m.step {
	case StepSecurity:
		m.SecurityCursor = clamp(m.SecurityCursor+delta, len(securityOptions))
	case StepHidden:
		m.HiddenCursor = clamp(m.HiddenCursor+delta, len(hiddenOptions))
	case StepStyle:
		m.StyleCursor = clamp(m.StyleCursor+delta, len(styleOptions))
	case StepColor:
		m.ColorCursor = clamp(m.ColorCursor+delta, len(style.Names())+1)
	case StepOutput:
		m.OutputCursor = clamp(m.OutputCursor+delta, len(outputOptions))
	}
}

// advance validates the current step and moves forward.
func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case StepSSID:
		ssid := strings.TrimSpace(m.SSIDInput.Value())
		if err := wifi.ValidateSSID(ssid); err != nil {
			if wifi.IsWarning(err) {
				m.warnings = append(m.warnings, err.Error())
			} else {
				m.errMsg = err.Error()
				return m, nil
			}
		}
		m.network.SSID = ssid
		m.step = StepSecurity

	case StepSecurity:
		m.network.Security = securityOptions[m.SecurityCursor].kind
		if m.network.Security == wifi.SecurityOpen {
			m.network.Password = ""
			m.step = StepHidden
		} else {
			m.step = StepPassword
			return m, m.PasswordInput.Focus()
		}

	case StepPassword:
		password := m.PasswordInput.Value()
		if err := wifi.ValidatePassword(password, m.network.Security); err != nil {
			if wifi.IsWarning(err) {
				m.warnings = append(m.warnings, err.Error())
			} else {
				m.errMsg = err.Error()
				return m, nil
			}
		}
		m.network.Password = password
		m.step = StepHidden

	case StepHidden:
		m.network.Hidden = m.HiddenCursor == 1
		m.step = StepStyle

	case StepStyle:
		m.styleKind = styleOptions[m.StyleCursor]
		m.step = StepColor

	case StepColor:
		names := style.Names()
		if m.ColorCursor == len(names) {
			m.step = StepCustomColor
			return m, m.HexInput.Focus()
		}
		spec, _ := style.Lookup(names[m.ColorCursor])
		m.color = spec
		m.step = StepOutput

	case StepCustomColor:
		spec, err := style.ResolveColor(m.HexInput.Value())
		if err != nil {
			// Custom hex is an explicit choice; re-prompt instead of
			// silently substituting black.
			m.errMsg = fmt.Sprintf("invalid hex color %q (use #RGB or #RRGGBB)", m.HexInput.Value())
			return m, nil
		}
		m.color = spec
		m.step = StepOutput

	case StepOutput:
		if m.OutputCursor == 1 {
			m.step = StepFilename
			return m, m.FileInput.Focus()
		}
		m.pngPath = ""
		m.step = StepReview

	case StepFilename:
		name := strings.TrimSpace(m.FileInput.Value())
		if name == "" {
			name = m.FileInput.Placeholder
		}
		m.pngPath = render.EnsurePNGPath(name)
		m.step = StepReview

	case StepReview:
		m.Finished = true
		return m, tea.Quit
	}

	return m, nil
}

// goBack returns to the previous step, honoring the skips taken on the way
// forward.
func (m WizardModel) goBack() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case StepSSID:
		// Nothing before the first step - cancel instead
		m.Cancelled = true
		return m, tea.Quit
	case StepSecurity:
		m.step = StepSSID
	case StepPassword:
		m.step = StepSecurity
	case StepHidden:
		if m.network.Security == wifi.SecurityOpen {
			m.step = StepSecurity
		} else {
			m.step = StepPassword
		}
	case StepStyle:
		m.step = StepHidden
	case StepColor:
		m.step = StepStyle
	case StepCustomColor:
		m.step = StepColor
	case StepOutput:
		m.step = StepColor
	case StepFilename:
		m.step = StepOutput
	case StepReview:
		if m.pngPath != "" {
			m.step = StepFilename
		} else {
			m.step = StepOutput
		}
	}

	return m, nil
}

// View implements tea.Model
func (m WizardModel) View() string {
	var b strings.Builder

	switch m.step {
	case StepSSID:
		b.WriteString(RenderTitle("Network name"))
		b.WriteString("\n")
		b.WriteString(RenderSubtitle("The SSID exactly as the network broadcasts it."))
		b.WriteString("\n\n")
		b.WriteString(m.SSIDInput.View())

	case StepSecurity:
		b.WriteString(RenderTitle("Security"))
		b.WriteString("\n\n")
		for i, opt := range securityOptions {
			b.WriteString(RenderMenuItem(opt.label, i == m.SecurityCursor))
			b.WriteString("\n")
		}

	case StepPassword:
		b.WriteString(RenderTitle("Password"))
		b.WriteString("\n")
		b.WriteString(RenderSubtitle("Embedded in the code; anyone who scans it can join."))
		b.WriteString("\n\n")
		b.WriteString(m.PasswordInput.View())

	case StepHidden:
		b.WriteString(RenderTitle("Hidden network?"))
		b.WriteString("\n\n")
		for i, opt := range hiddenOptions {
			b.WriteString(RenderMenuItem(opt, i == m.HiddenCursor))
			b.WriteString("\n")
		}

	case StepStyle:
		b.WriteString(RenderTitle("Module style"))
		b.WriteString("\n\n")
		for i, k := range styleOptions {
			b.WriteString(RenderMenuItem(k.String(), i == m.StyleCursor))
			b.WriteString("\n")
		}

	case StepColor:
		b.WriteString(RenderTitle("Foreground color"))
		b.WriteString("\n\n")
		names := style.Names()
		for i, name := range names {
			spec, _ := style.Lookup(name)
			b.WriteString(RenderMenuItem(fmt.Sprintf("%-8s %s", name, spec.Hex), i == m.ColorCursor))
			b.WriteString("\n")
		}
		b.WriteString(RenderMenuItem(customColorLabel, m.ColorCursor == len(names)))
		b.WriteString("\n")

	case StepCustomColor:
		b.WriteString(RenderTitle("Custom color"))
		b.WriteString("\n")
		b.WriteString(RenderSubtitle("Hex triplet, #RGB or #RRGGBB."))
		b.WriteString("\n\n")
		b.WriteString(m.HexInput.View())

	case StepOutput:
		b.WriteString(RenderTitle("Output"))
		b.WriteString("\n\n")
		for i, opt := range outputOptions {
			b.WriteString(RenderMenuItem(opt, i == m.OutputCursor))
			b.WriteString("\n")
		}

	case StepFilename:
		b.WriteString(RenderTitle("Image file"))
		b.WriteString("\n")
		b.WriteString(RenderSubtitle(".png is appended when missing."))
		b.WriteString("\n\n")
		b.WriteString(m.FileInput.View())

	case StepReview:
		b.WriteString(RenderTitle("Review"))
		b.WriteString("\n\n")
		b.WriteString(m.renderSummary())
		b.WriteString("\n\n")
		b.WriteString(SuccessStyle.Render("Press enter to generate"))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderError(m.errMsg))
	}

	for _, w := range m.warnings {
		b.WriteString("\n")
		b.WriteString(RenderWarning(w))
	}

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

// renderSummary builds the review-step summary of everything collected.
func (m WizardModel) renderSummary() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  Network:  %s\n", m.network.SSID))
	b.WriteString(fmt.Sprintf("  Security: %s\n", m.network.Security))
	if m.network.Security != wifi.SecurityOpen {
		b.WriteString(fmt.Sprintf("  Password: %s\n", strings.Repeat("•", len(m.network.Password))))
	}
	if m.network.Hidden {
		b.WriteString("  Hidden:   yes (not encoded in the payload)\n")
	}
	b.WriteString(fmt.Sprintf("  Style:    %s\n", m.styleKind))
	b.WriteString(fmt.Sprintf("  Color:    %s\n", m.color))
	if m.pngPath != "" {
		b.WriteString(fmt.Sprintf("  Output:   %s\n", m.pngPath))
	} else {
		b.WriteString("  Output:   terminal\n")
	}

	return InfoBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
