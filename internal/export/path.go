// SPDX-License-Identifier: MPL-2.0

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/iancoleman/strcase"
)

// DefaultBaseName derives the default output file name (without extension)
// from an SSID: snake-cased with a _qrcode suffix.
func DefaultBaseName(ssid string) string {
	return strcase.ToSnake(ssid) + "_qrcode"
}

// StripKnownExtension removes a trailing export extension from a
// user-entered file name, so "my_qr.png" and "my_qr" name the same file.
func StripKnownExtension(name string) string {
	lower := strings.ToLower(name)
	for _, f := range []Format{FormatPNG, FormatJPG, FormatSVG, FormatPDF} {
		if strings.HasSuffix(lower, "."+f.Extension()) {
			return name[:len(name)-len(f.Extension())-1]
		}
	}
	return name
}

// ResolveDestination computes the final output path for a file-producing
// format.
//
// With no explicit path the file lands in defaultDir (the desktop when that
// is empty too). An explicit path naming a directory — existing, or spelled
// with a trailing separator — receives the default file name; any other
// explicit path is taken as the file itself with the extension forced to
// match the format. Parent directories are created as needed.
func ResolveDestination(explicit, defaultDir, baseName string, format Format) (string, error) {
	ext := format.Extension()
	if ext == "" {
		return "", fmt.Errorf("format %q does not produce a file", format)
	}
	fileName := baseName + "." + ext

	if explicit == "" {
		dir := defaultDir
		if dir == "" {
			var err error
			dir, err = DesktopDir()
			if err != nil {
				return "", err
			}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", dir, err)
		}
		return filepath.Join(dir, fileName), nil
	}

	if isDirPath(explicit) {
		if err := os.MkdirAll(explicit, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", explicit, err)
		}
		return filepath.Join(explicit, fileName), nil
	}

	parent := filepath.Dir(explicit)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", parent, err)
	}
	return forceExtension(explicit, ext), nil
}

// isDirPath reports whether the path names a directory, either because it
// exists as one or because the user spelled it with a trailing separator.
func isDirPath(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// forceExtension replaces the path's extension (if any) with ext.
func forceExtension(path, ext string) string {
	if old := filepath.Ext(path); old != "" {
		path = path[:len(path)-len(old)]
	}
	return path + "." + ext
}

// DesktopDir returns the user's desktop directory, the default destination
// for generated files.
func DesktopDir() (string, error) {
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Desktop"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating the desktop directory: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}
