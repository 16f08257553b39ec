// SPDX-License-Identifier: MPL-2.0

package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Julian-Bruyers/qrlan-cli/internal/qr"
	"github.com/Julian-Bruyers/qrlan-cli/internal/wifi"

	qrcode "github.com/skip2/go-qrcode"
)

// Format selects the artifact type produced by the pipeline.
type Format string

const (
	FormatConsole Format = "console"
	FormatPNG     Format = "png"
	FormatJPG     Format = "jpg"
	FormatSVG     Format = "svg"
	FormatPDF     Format = "pdf"
)

// Extension returns the file extension for file-producing formats and ""
// for console output.
func (f Format) Extension() string {
	if f == FormatConsole {
		return ""
	}
	return string(f)
}

type (
	// Target describes one requested export. It is constructed by the CLI
	// layer; the pipeline never re-derives the format from flags.
	Target struct {
		Format Format
		// DestPath is the final destination for file-producing formats,
		// usually computed with ResolveDestination.
		DestPath string
		// Title is the document heading, PDF only.
		Title string
	}

	// DocumentExporter produces the typeset PDF artifact from a staged
	// PNG rendering. Implemented by the typeset package.
	DocumentExporter interface {
		Export(ctx context.Context, imagePNG []byte, destPath, title string) error
	}

	// Options carries render parameters shared by all formats.
	Options struct {
		// MaxDimension caps raster output; <= 0 selects the default.
		MaxDimension int
		// Recovery is the QR error correction level.
		Recovery qrcode.RecoveryLevel
		// Stdout receives console output; defaults to os.Stdout.
		Stdout io.Writer
	}

	// Pipeline dispatches exports by format.
	Pipeline struct {
		opts Options
		docs DocumentExporter
	}
)

// NewPipeline builds a Pipeline. docs may be nil when the PDF format is
// never requested.
func NewPipeline(opts Options, docs DocumentExporter) *Pipeline {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &Pipeline{opts: opts, docs: docs}
}

// Export renders the payload and writes the artifact selected by the target.
// Exactly one network is processed per call.
func (p *Pipeline) Export(ctx context.Context, network wifi.Network, payload string, target Target) error {
	switch target.Format {
	case FormatConsole:
		return p.exportConsole(network.SSID, payload)
	case FormatPNG:
		return p.exportPNG(payload, target.DestPath)
	case FormatJPG:
		return p.exportJPG(payload, target.DestPath)
	case FormatSVG:
		return p.exportSVG(payload, target.DestPath)
	case FormatPDF:
		return p.exportPDF(ctx, payload, target.DestPath, target.Title)
	default:
		return fmt.Errorf("unsupported export format %q", target.Format)
	}
}

// exportConsole prints the block-character render followed by the SSID,
// centered against the rendered width.
func (p *Pipeline) exportConsole(ssid, payload string) error {
	text, width, err := qr.RenderConsole(payload, p.opts.Recovery)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.opts.Stdout)
	fmt.Fprint(p.opts.Stdout, text)
	fmt.Fprintln(p.opts.Stdout, qr.CenterLabel(ssid, width))
	return nil
}

func (p *Pipeline) exportPNG(payload, destPath string) error {
	rendered, err := qr.Render(payload, p.opts.MaxDimension, p.opts.Recovery)
	if err != nil {
		return err
	}
	data, err := rendered.PNG()
	if err != nil {
		return err
	}
	return writeFileAtomic(destPath, data)
}

func (p *Pipeline) exportSVG(payload, destPath string) error {
	rendered, err := qr.Render(payload, p.opts.MaxDimension, p.opts.Recovery)
	if err != nil {
		return err
	}
	data := renderSVG(rendered.Bitmap(), rendered.Scale())
	return writeFileAtomic(destPath, data)
}

func (p *Pipeline) exportPDF(ctx context.Context, payload, destPath, title string) error {
	if p.docs == nil {
		return fmt.Errorf("no document exporter configured for PDF output")
	}
	rendered, err := qr.Render(payload, p.opts.MaxDimension, p.opts.Recovery)
	if err != nil {
		return err
	}
	data, err := rendered.PNG()
	if err != nil {
		return err
	}
	return p.docs.Export(ctx, data, destPath, title)
}
