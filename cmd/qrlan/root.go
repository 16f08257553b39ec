// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Julian-Bruyers/qrlan-cli/internal/export"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output.
	verbose bool
	// outputPath is the --output-path/-o destination override.
	outputPath string
	// Output mode flags; at most one may be set, PDF is the default.
	showFlag bool
	pngFlag  bool
	jpgFlag  bool
	svgFlag  bool
	// designPath is an optional custom LaTeX layout for PDF output.
	designPath string
	// noUpdateCheck suppresses the release check for this run.
	noUpdateCheck bool

	// rootCmd is the whole CLI; qrlan has no subcommands.
	rootCmd = &cobra.Command{
		Use:   "qrlan",
		Short: "Generate Wi-Fi QR codes from stored credentials",
		Long: TitleStyle.Render("qrlan") + SubtitleStyle.Render(" - Generate Wi-Fi QR codes from stored credentials") + `

qrlan reads the Wi-Fi networks your system already knows, looks their
passwords up in the platform credential store, and turns the selection
into a QR code that phones join with a single scan.

` + SubtitleStyle.Render("Output formats:") + `
  (default)     Typeset PDF with a title, saved to the desktop
  --show        Print the QR code in the terminal
  --png/--jpg   Raster image
  --svg         Vector image

` + SubtitleStyle.Render("Examples:") + `
  qrlan                     Pick a network, export a PDF to the desktop
  qrlan --show              Print the QR code in the terminal
  qrlan --png -o ./qr/      Save a PNG into ./qr/`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output-path", "o", "", "output file or directory (default: the desktop)")
	rootCmd.Flags().BoolVar(&showFlag, "show", false, "display the QR code in the console (no file generated)")
	rootCmd.Flags().BoolVar(&pngFlag, "png", false, "generate a PNG image")
	rootCmd.Flags().BoolVar(&jpgFlag, "jpg", false, "generate a JPG image")
	rootCmd.Flags().BoolVar(&svgFlag, "svg", false, "generate an SVG image")
	rootCmd.Flags().StringVar(&designPath, "design", "", "custom LaTeX layout file for PDF output")
	rootCmd.Flags().BoolVar(&noUpdateCheck, "no-update-check", false, "skip the check for newer releases")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.MarkFlagsMutuallyExclusive("show", "png", "jpg", "svg")
}

// selectedFormat maps the output mode flags to an export format.
func selectedFormat() export.Format {
	switch {
	case showFlag:
		return export.FormatConsole
	case pngFlag:
		return export.FormatPNG
	case jpgFlag:
		return export.FormatJPG
	case svgFlag:
		return export.FormatSVG
	default:
		return export.FormatPDF
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
