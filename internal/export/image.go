// SPDX-License-Identifier: MPL-2.0

package export

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/Julian-Bruyers/qrlan-cli/internal/qr"
)

// jpegQuality trades file size against artifact noise around the sharp
// module edges; QR readers tolerate 90 comfortably.
const jpegQuality = 90

func (p *Pipeline) exportJPG(payload, destPath string) error {
	rendered, err := qr.Render(payload, p.opts.MaxDimension, p.opts.Recovery)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rendered.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encoding QR image as JPG: %w", err)
	}
	return writeFileAtomic(destPath, buf.Bytes())
}

// writeFileAtomic writes data through a temp file in the destination
// directory and renames it into place, so the destination is either the
// previous file or the complete new one — never a partial write. Missing
// parent directories are created; an existing destination is replaced.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, ".qrlan-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := f.Name()

	written := false
	defer func() {
		if !written {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("moving %s to %s: %w", tmpPath, path, err)
	}
	written = true
	return nil
}
