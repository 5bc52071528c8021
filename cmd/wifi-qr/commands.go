package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DmitriiSer/wifi-qr-cli/internal/logging"
	"github.com/DmitriiSer/wifi-qr-cli/internal/profiles"
	"github.com/DmitriiSer/wifi-qr-cli/internal/render"
	"github.com/DmitriiSer/wifi-qr-cli/internal/style"
	"github.com/DmitriiSer/wifi-qr-cli/internal/ui"
	"github.com/DmitriiSer/wifi-qr-cli/internal/wifi"
	"github.com/DmitriiSer/wifi-qr-cli/internal/wizard/tui"
)

// Generation flags
var (
	flagSSID     string
	flagPassword string
	flagSecurity string
	flagHidden   bool
	flagStyle    string
	flagColor    string
	flagOutput   string
	flagProfile  string
)

func init() {
	generateCmd.Flags().StringVar(&flagSSID, "ssid", "", "Network name (SSID)")
	generateCmd.Flags().StringVar(&flagPassword, "password", "", "Network password (never stored)")
	generateCmd.Flags().StringVar(&flagSecurity, "security", "", "Security type (wpa, wpa2, wpa3, wep, open; default wpa)")
	generateCmd.Flags().BoolVar(&flagHidden, "hidden", false, "Network does not broadcast its SSID")
	generateCmd.Flags().StringVar(&flagStyle, "style", "", "Module style (square, circle)")
	generateCmd.Flags().StringVar(&flagColor, "color", "", "Foreground color (palette name or #RGB/#RRGGBB)")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "Write a PNG to this file instead of rendering in the terminal")
	generateCmd.Flags().StringVar(&flagProfile, "profile", "", "Load defaults from a saved profile")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(profileCmd)
}

// generateCmd builds a code non-interactively from flags
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Wi-Fi QR code from flags",
	Long: `Generate a Wi-Fi QR code without the interactive wizard.

The SSID is required (via --ssid or --profile). Secured networks also need
--password; it is embedded in the code but never written to disk. Unknown
style or color values fall back to the documented defaults with a warning
rather than aborting.`,
	Example: `  # Terminal rendering with defaults (WPA, square, black)
  wifi-qr generate --ssid "HomeNet" --password "hunter2hunter2"

  # Open guest network as a PNG
  wifi-qr generate --ssid "Cafe Guest" --security open --output guest.png

  # Styled image
  wifi-qr generate --ssid "HomeNet" --password "hunter2hunter2" \
    --style circle --color blue --output home.png

  # From a saved profile (prompting only the password via flag)
  wifi-qr generate --profile home --password "hunter2hunter2"`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ssid := flagSSID
	security := flagSecurity
	hidden := flagHidden
	styleInput := flagStyle
	colorInput := flagColor

	// Profile values fill in whatever the flags left unset
	if flagProfile != "" {
		registry, err := profiles.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		p := registry.Get(flagProfile)
		if p == nil {
			return fmt.Errorf("no profile named %q (see 'wifi-qr profile list')", flagProfile)
		}
		if ssid == "" {
			ssid = p.SSID
		}
		if security == "" {
			security = p.Security
		}
		if !cmd.Flags().Changed("hidden") {
			hidden = p.Hidden
		}
		if styleInput == "" {
			styleInput = p.Style
		}
		if colorInput == "" {
			colorInput = p.Color
		}

		registry.Touch(flagProfile)
		if err := registry.Save(); err != nil {
			logging.Warn("failed to update profile timestamp", zap.Error(err))
		}
	}

	if ssid == "" {
		return fmt.Errorf("--ssid is required (or use --profile)")
	}

	cfg := wifi.NetworkConfig{
		SSID:     ssid,
		Password: flagPassword,
		Security: wifi.ResolveSecurity(security),
		Hidden:   hidden,
	}

	warnings, fatal := wifi.SeparateWarningsAndErrors(wifi.ValidateConfig(cfg))
	for _, w := range warnings {
		ui.Warnf("%s", w)
	}
	if len(fatal) > 0 {
		ui.Errorf("%s", wifi.FormatValidationErrors(fatal))
		return fmt.Errorf("invalid credentials")
	}

	styleKind, err := style.ResolveStyle(styleInput)
	if err != nil {
		ui.Warnf("%s", err)
	}
	color, err := style.ResolveColor(colorInput)
	if err != nil {
		ui.Warnf("%s", err)
	}

	return emit(cfg, styleKind, color, flagOutput)
}

// emit renders the payload for cfg to the terminal or to a PNG file. Shared
// by the generate command and the wizard.
func emit(cfg wifi.NetworkConfig, styleKind style.Kind, color style.ColorSpec, output string) error {
	payload := wifi.BuildPayload(cfg)
	logging.Debug("built payload",
		zap.String("security", cfg.Security.String()),
		zap.Int("length", len(payload)))

	if output != "" {
		written, err := render.WritePNG(payload, output, render.ImageOptions{
			Style: styleKind,
			Color: color,
		})
		if err != nil {
			return err
		}
		ui.Successf("wrote %s (%s modules, %s)", written, styleKind, color)
		return nil
	}

	summary := fmt.Sprintf("%s\n%s",
		ui.TitleStyle.Render(cfg.SSID),
		ui.MutedStyle.Render(cfg.Security.String()))
	box := ui.SummaryBoxStyle.MaxWidth(ui.GetTerminalWidth())
	fmt.Println(box.Render(summary))
	fmt.Println()
	render.Terminal(payload, os.Stdout)
	fmt.Println(ui.MutedStyle.Render("Scan with a phone camera to join the network"))
	return nil
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive wizard",
	Long: `Launch an interactive TUI wizard that walks through every choice:
network name, security, password, module style, color, and output.

This is the recommended way to generate codes for most users.`,
	Example: `  # Launch the wizard
  wifi-qr wizard
  # Or simply (wizard is default):
  wifi-qr

  # Start from a saved profile's values
  wifi-qr wizard --profile home`,
	RunE: runWizard,
}

func init() {
	wizardCmd.Flags().StringVar(&flagProfile, "profile", "", "Pre-fill the wizard from a saved profile")
}

func runWizard(cmd *cobra.Command, args []string) error {
	var defaults tui.Result

	if flagProfile != "" {
		registry, err := profiles.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		p := registry.Get(flagProfile)
		if p == nil {
			return fmt.Errorf("no profile named %q (see 'wifi-qr profile list')", flagProfile)
		}
		defaults.Network.SSID = p.SSID
		defaults.Network.Security = wifi.ResolveSecurity(p.Security)
		defaults.Network.Hidden = p.Hidden
		// Style and color warnings are deferred to the wizard's menus,
		// which simply start from the fallback position.
		defaults.Style, _ = style.ResolveStyle(p.Style)
		defaults.Color, _ = style.ResolveColor(p.Color)
	}

	p := tea.NewProgram(tui.NewWizardModel(defaults), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	m, ok := finalModel.(tui.WizardModel)
	if !ok || m.Cancelled || !m.Finished {
		fmt.Println(ui.MutedStyle.Render("Cancelled, nothing generated."))
		return nil
	}

	for _, w := range m.Warnings() {
		ui.Warnf("%s", w)
	}

	res := m.Result()
	return emit(res.Network, res.Style, res.Color, res.PNGPath)
}

// colorsCmd lists the built-in palette
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the built-in color palette",
	Long: `List the named foreground colors accepted by --color.

Any #RGB or #RRGGBB hex triplet is also accepted.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.TitleStyle.Render("Available colors"))
		fmt.Println()
		for _, name := range style.Names() {
			spec, _ := style.Lookup(name)
			fmt.Printf("  %s %s %s\n",
				ui.Swatch(spec.Hex),
				ui.SwatchLabelStyle.Render(name),
				ui.MutedStyle.Render(spec.Hex))
		}
		fmt.Println()
		fmt.Println(ui.MutedStyle.Render("Custom colors: any #RGB or #RRGGBB hex value"))
	},
}

// profileCmd groups the profile management subcommands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved network profiles",
	Long: `Manage saved network profiles.

A profile stores a network's SSID, security type, hidden flag, and preferred
style and color under a short name. Passwords are NEVER stored; supply them
per invocation via --password or the wizard prompt.`,
}

var (
	saveSSID     string
	saveSecurity string
	saveHidden   bool
	saveStyle    string
	saveColor    string
)

func init() {
	profileSaveCmd.Flags().StringVar(&saveSSID, "ssid", "", "Network name (SSID)")
	profileSaveCmd.Flags().StringVar(&saveSecurity, "security", "", "Security type (wpa, wpa2, wpa3, wep, open)")
	profileSaveCmd.Flags().BoolVar(&saveHidden, "hidden", false, "Network does not broadcast its SSID")
	profileSaveCmd.Flags().StringVar(&saveStyle, "style", "", "Preferred module style")
	profileSaveCmd.Flags().StringVar(&saveColor, "color", "", "Preferred foreground color")
	profileSaveCmd.MarkFlagRequired("ssid")

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save or replace a network profile",
	Example: `  # Save the home network with preferred styling
  wifi-qr profile save home --ssid "HomeNet" --security wpa2 --style circle --color blue

  # Save an open guest network
  wifi-qr profile save guest --ssid "Cafe Guest" --security open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Surface style/color typos at save time instead of at every use
		if _, err := style.ResolveStyle(saveStyle); err != nil {
			ui.Warnf("%s", err)
		}
		if _, err := style.ResolveColor(saveColor); err != nil {
			ui.Warnf("%s", err)
		}

		registry, err := profiles.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}

		replaced := registry.Get(name) != nil
		registry.Set(name, &profiles.Profile{
			SSID:     saveSSID,
			Security: saveSecurity,
			Hidden:   saveHidden,
			Style:    saveStyle,
			Color:    saveColor,
		})

		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save profiles: %w", err)
		}

		if replaced {
			ui.Successf("replaced profile %q", name)
		} else {
			ui.Successf("saved profile %q", name)
		}
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := profiles.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}

		names := registry.Names()
		if len(names) == 0 {
			fmt.Println("No saved profiles.")
			fmt.Println()
			fmt.Println("Use 'wifi-qr profile save <name> --ssid <ssid>' to create one.")
			return nil
		}

		fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Saved profiles (%d)", len(names))))
		fmt.Println()
		for _, name := range names {
			p := registry.Get(name)
			security := p.Security
			if security == "" {
				security = "wpa"
			}
			line := fmt.Sprintf("  %-12s %s (%s)", name, p.SSID, security)
			if p.Hidden {
				line += " [hidden]"
			}
			fmt.Println(line)
			if p.Style != "" || p.Color != "" {
				fmt.Println(ui.MutedStyle.Render(fmt.Sprintf("               style=%s color=%s", p.Style, p.Color)))
			}
		}
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := profiles.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}

		if !registry.Delete(args[0]) {
			return fmt.Errorf("no profile named %q", args[0])
		}

		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save profiles: %w", err)
		}

		ui.Successf("deleted profile %q", args[0])
		return nil
	},
}
