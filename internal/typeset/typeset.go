// SPDX-License-Identifier: MPL-2.0

package typeset

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

//go:embed layouts/standard.tex
var standardLayout string

// DefaultCompiler is the LaTeX engine used when no other is configured.
const DefaultCompiler = "pdflatex"

const (
	// Temp file names are fixed so a crashed run leaves recognizable
	// artifacts and the next run's cleanup collects them.
	tempImageName  = "qrlan_qr_temp.png"
	tempSourceName = "qrlan_latex_temp.tex"

	// compileTimeout bounds the compiler run; a first MiKTeX run may
	// install packages on demand, so this is deliberately generous.
	compileTimeout = 120 * time.Second

	// logTailLimit caps how much of the compiler log a CompileError carries.
	logTailLimit = 4096
)

const (
	titlePlaceholder = "{{QRLAN_PDF_TITLE}}"
	imagePlaceholder = "{{QR_CODE_IMAGE_PATH}}"
)

// titleEscaper neutralizes LaTeX-active characters in user text. It runs in
// a single pass, so replacement output is never re-matched; the backslash
// rule still leads so the intent reads top down.
var titleEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`~`, `\textasciitilde{}`,
)

type (
	// compileResult captures a finished compiler run. A nonzero exitCode
	// with a nil error means the compiler ran but failed.
	compileResult struct {
		stdout   string
		stderr   string
		exitCode int
	}

	runnerFunc func(ctx context.Context, name string, args ...string) (compileResult, error)

	// Exporter compiles a LaTeX layout into a PDF next to the destination
	// path. It implements export.DocumentExporter.
	Exporter struct {
		compiler string
		layout   string
		run      runnerFunc
		lookPath func(string) (string, error)
	}

	// ExporterOption configures an Exporter during construction.
	ExporterOption func(*Exporter)
)

// WithLayout replaces the embedded layout with a custom LaTeX source. The
// source must carry both placeholders; LoadLayout enforces that.
func WithLayout(source string) ExporterOption {
	return func(e *Exporter) { e.layout = source }
}

// NewExporter returns an Exporter using the given compiler binary, or
// DefaultCompiler when empty.
func NewExporter(compiler string, opts ...ExporterOption) *Exporter {
	if compiler == "" {
		compiler = DefaultCompiler
	}
	e := &Exporter{compiler: compiler, layout: standardLayout, run: runCompiler, lookPath: exec.LookPath}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadLayout reads a custom layout file and verifies it carries the title
// and image placeholders the substitution step fills in.
func LoadLayout(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading layout %s: %w", path, err)
	}
	source := string(data)
	for _, placeholder := range []string{titlePlaceholder, imagePlaceholder} {
		if !strings.Contains(source, placeholder) {
			return "", fmt.Errorf("layout %s is missing the %s placeholder", path, placeholder)
		}
	}
	return source, nil
}

// runCompiler is the production runnerFunc.
func runCompiler(ctx context.Context, name string, args ...string) (compileResult, error) {
	ctx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := compileResult{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("launching %s: %w", name, err)
	}
	return res, nil
}

// CheckCompiler reports whether the configured compiler is on PATH. Callers
// probe this before any interactive work so the user is not asked for a
// title the tool cannot use.
func (e *Exporter) CheckCompiler() error {
	if _, err := e.lookPath(e.compiler); err != nil {
		return &CompilerUnavailableError{Compiler: e.compiler}
	}
	return nil
}

// Export stages the PNG and a substituted copy of the layout in the
// destination directory, compiles there, and moves the produced PDF onto
// destPath. All temporary files — including the compiler's side products —
// are removed before returning, on success and on failure alike; cleanup
// never masks the compile result.
func (e *Exporter) Export(ctx context.Context, imagePNG []byte, destPath, title string) error {
	if err := e.CheckCompiler(); err != nil {
		return err
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	defer cleanupWorkspace(dir)

	imagePath := filepath.Join(dir, tempImageName)
	if err := os.WriteFile(imagePath, imagePNG, 0o644); err != nil {
		return fmt.Errorf("staging QR image %s: %w", imagePath, err)
	}

	source := renderLayout(e.layout, title)
	sourcePath := filepath.Join(dir, tempSourceName)
	if err := os.WriteFile(sourcePath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing LaTeX source %s: %w", sourcePath, err)
	}

	res, err := e.run(ctx, e.compiler, "-interaction=nonstopmode", "-output-directory", dir, sourcePath)
	if err != nil {
		return err
	}
	if res.exitCode != 0 {
		return &CompileError{
			Compiler: e.compiler,
			ExitCode: res.exitCode,
			Stdout:   res.stdout,
			Stderr:   res.stderr,
			Log:      logTail(sidecarPath(dir, "log")),
		}
	}

	produced := sidecarPath(dir, "pdf")
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replacing existing %s: %w", destPath, err)
	}
	if err := os.Rename(produced, destPath); err != nil {
		return fmt.Errorf("moving %s to %s: %w", produced, destPath, err)
	}
	return nil
}

// renderLayout substitutes the escaped title and the staged image name into
// the layout. The image is referenced by bare file name since the source
// compiles in the same directory.
func renderLayout(layout, title string) string {
	source := strings.ReplaceAll(layout, titlePlaceholder, escapeTitle(title))
	return strings.ReplaceAll(source, imagePlaceholder, tempImageName)
}

func escapeTitle(title string) string {
	return titleEscaper.Replace(title)
}

// sidecarPath names a compiler side product: the source base name with ext.
func sidecarPath(dir, ext string) string {
	base := strings.TrimSuffix(tempSourceName, filepath.Ext(tempSourceName))
	return filepath.Join(dir, base+"."+ext)
}

// cleanupWorkspace removes the staged inputs and every known compiler side
// product, best effort. A leftover temp PDF from a failed rename is
// collected too.
func cleanupWorkspace(dir string) {
	os.Remove(filepath.Join(dir, tempImageName))
	os.Remove(filepath.Join(dir, tempSourceName))
	for _, ext := range []string{"pdf", "aux", "log", "out", "fls", "toc", "synctex.gz"} {
		os.Remove(sidecarPath(dir, ext))
	}
}

// logTail returns up to logTailLimit bytes from the end of the compiler log.
func logTail(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	if len(data) > logTailLimit {
		data = data[len(data)-logTailLimit:]
	}
	return string(data)
}
