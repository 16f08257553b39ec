// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Julian-Bruyers/qrlan-cli/internal/config"
	"github.com/Julian-Bruyers/qrlan-cli/internal/export"
	"github.com/Julian-Bruyers/qrlan-cli/internal/issue"
	"github.com/Julian-Bruyers/qrlan-cli/internal/qr"
	"github.com/Julian-Bruyers/qrlan-cli/internal/selfupdate"
	"github.com/Julian-Bruyers/qrlan-cli/internal/typeset"
	"github.com/Julian-Bruyers/qrlan-cli/internal/wifi"
)

// run is the whole interactive flow: pick a network, resolve its
// credentials, and export the QR code in the requested format.
func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "qrlan",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.Default()
	}

	format := selectedFormat()
	prompt := newPrompter(cmd.InOrStdin(), stdout)

	// Probe the typeset toolchain before any interactive work, so the user
	// is not asked for a title the tool cannot use.
	var docs export.DocumentExporter
	if format == export.FormatPDF {
		exporter, err := newDocumentExporter(cfg)
		if err != nil {
			var unavailable *typeset.CompilerUnavailableError
			if errors.As(err, &unavailable) {
				fmt.Fprintln(os.Stderr, issue.RenderMarkdown(unavailable.Remediation()))
			}
			return err
		}
		docs = exporter
	}

	backend := wifi.DefaultBackend()
	network, ok, err := pickNetwork(ctx, backend, prompt, logger)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout, "Exiting, no network was selected.")
		return nil
	}

	network, err = resolveCredentials(ctx, backend, network, prompt, logger)
	if err != nil {
		return err
	}

	security := wifi.ResolveSecurity(network.Security, network.Password, prompt.securityType)
	payload := qr.BuildPayload(network.SSID, network.Password, security)
	logger.Debug("built payload", "ssid", network.SSID, "security", security)

	pipeline := export.NewPipeline(export.Options{
		MaxDimension: cfg.Image.MaxDimension,
		Recovery:     cfg.Recovery(),
		Stdout:       stdout,
	}, docs)

	if format == export.FormatConsole {
		return pipeline.Export(ctx, network, payload, export.Target{Format: export.FormatConsole})
	}

	target, err := buildFileTarget(network, format, cfg, prompt)
	if err != nil {
		return err
	}
	if err := pipeline.Export(ctx, network, payload, target); err != nil {
		return issue.NewErrorContext().
			WithOperation(fmt.Sprintf("generate QR code %s", strings.ToUpper(string(format)))).
			WithResource(target.DestPath).
			Wrap(err).
			Build()
	}
	fmt.Fprintf(stdout, "%s %s\n",
		SuccessStyle.Render(fmt.Sprintf("Successfully generated QR code %s:", strings.ToUpper(string(format)))),
		HighlightStyle.Render(target.DestPath))

	if cfg.Update.Check && !noUpdateCheck {
		notifyUpdate(ctx, stdout, logger)
	}
	return nil
}

// newDocumentExporter builds the typeset exporter from config and the
// --design flag, and verifies the compiler is available.
func newDocumentExporter(cfg *config.Config) (*typeset.Exporter, error) {
	layoutPath := designPath
	if layoutPath == "" {
		layoutPath = cfg.PDF.Design
	}

	var opts []typeset.ExporterOption
	if layoutPath != "" {
		source, err := typeset.LoadLayout(layoutPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, typeset.WithLayout(source))
	}

	exporter := typeset.NewExporter(cfg.PDF.Compiler, opts...)
	if err := exporter.CheckCompiler(); err != nil {
		return nil, err
	}
	return exporter, nil
}

// pickNetwork enumerates known networks and lets the user choose. When
// enumeration fails or finds nothing, manual SSID entry is offered; ok is
// false when the user declines.
func pickNetwork(ctx context.Context, backend wifi.Backend, prompt *prompter, logger *log.Logger) (wifi.Network, bool, error) {
	networks, err := backend.ListKnownNetworks(ctx)
	switch {
	case err != nil:
		logger.Warn("could not enumerate Wi-Fi networks", "err", err)
		ssid, promptErr := prompt.manualSSID()
		if promptErr != nil {
			return wifi.Network{}, false, promptErr
		}
		if ssid == "" {
			// Declining after a failed enumeration surfaces the original
			// problem rather than exiting silently.
			return wifi.Network{}, false, err
		}
		return wifi.Network{SSID: ssid}, true, nil
	case len(networks) == 0:
		fmt.Fprintln(prompt.out, "No known Wi-Fi networks found.")
		ssid, promptErr := prompt.manualSSID()
		if promptErr != nil {
			return wifi.Network{}, false, promptErr
		}
		if ssid == "" {
			return wifi.Network{}, false, nil
		}
		return wifi.Network{SSID: ssid}, true, nil
	default:
		network, selErr := prompt.selectNetwork(networks)
		if selErr != nil {
			return wifi.Network{}, false, selErr
		}
		return network, true, nil
	}
}

// resolveCredentials fills in a missing password: first from the platform
// credential store, then by asking. An empty answer means an open network.
func resolveCredentials(ctx context.Context, backend wifi.Backend, network wifi.Network, prompt *prompter, logger *log.Logger) (wifi.Network, error) {
	if network.PasswordKnown {
		return network, nil
	}

	password, found, err := backend.ResolvePassword(ctx, network.SSID)
	if err != nil {
		logger.Warn("could not look up the stored password", "ssid", network.SSID, "err", err)
	}
	if found {
		network.Password = password
		network.PasswordKnown = true
		return network, nil
	}

	password, err = prompt.password(network.SSID)
	if err != nil {
		return network, err
	}
	network.Password = password
	network.PasswordKnown = password != ""
	return network, nil
}

// buildFileTarget asks the interactive questions for file output (title for
// PDF, optional file name) and resolves the destination path.
func buildFileTarget(network wifi.Network, format export.Format, cfg *config.Config, prompt *prompter) (export.Target, error) {
	title := ""
	if format == export.FormatPDF {
		answer, err := prompt.title(network.SSID)
		if err != nil {
			return export.Target{}, err
		}
		title = answer
		if title == "" {
			title = network.SSID
		}
	}

	baseName := export.DefaultBaseName(network.SSID)
	answer, err := prompt.fileName(baseName, format.Extension())
	if err != nil {
		return export.Target{}, err
	}
	if answer != "" {
		baseName = export.StripKnownExtension(answer)
	}

	dest, err := export.ResolveDestination(outputPath, cfg.OutputDir, baseName, format)
	if err != nil {
		return export.Target{}, err
	}
	return export.Target{Format: format, DestPath: dest, Title: title}, nil
}

// notifyUpdate checks the release feed and prints a short notice when a
// newer minor or major version is published. Failures only show up in
// verbose output; the check must never get in the way of the run.
func notifyUpdate(ctx context.Context, stdout io.Writer, logger *log.Logger) {
	update, err := selfupdate.NewClient().Check(ctx, Version)
	if err != nil {
		logger.Debug("update check failed", "err", err)
		return
	}
	if update == nil {
		return
	}
	fmt.Fprintf(stdout, "\nA new version of qrlan is available (%s -> %s).\n", update.CurrentVersion, update.LatestVersion)
	fmt.Fprintf(stdout, "\nCheck out the qrlan repository at:\n%s\n", selfupdate.RepoURL)
	fmt.Fprintf(stdout, "\nOr update directly by running:\n\n%s\n", HighlightStyle.Render(update.InstallHint()))
}
