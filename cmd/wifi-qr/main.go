// Wifi-qr generates Wi-Fi network QR codes.
//
// It encodes network credentials into the standard WIFI: payload format and
// renders the code either directly in the terminal or as a PNG image, with
// selectable module styles and colors. Scanning the code with a phone camera
// joins the network without typing the password.
//
// Usage:
//
//	wifi-qr [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'wifi-qr --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DmitriiSer/wifi-qr-cli/internal/logging"
	"github.com/DmitriiSer/wifi-qr-cli/internal/version"
)

func main() {
	// Silent unless WIFI_QR_LOG_LEVEL is set; diagnostics go to stderr so
	// they never mix with payload or QR output.
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wifi-qr",
	Short: "Wi-Fi QR Code Generator",
	Long: `A command-line generator for Wi-Fi network QR codes.

Encodes network credentials into the standard WIFI: payload and renders
the code in the terminal or as a PNG image. Module style and color are
selectable, and frequently used networks can be saved as profiles
(passwords are never stored).

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wifi-qr %s (commit: %s)\n", version.Version, version.Commit)
	},
}
