// SPDX-License-Identifier: MPL-2.0

package qr

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultMaxDimension caps rendered images at 2400×2400 pixels regardless of
// symbol version.
const DefaultMaxDimension = 2400

// RenderError means the payload could not be encoded as a QR symbol, which
// in practice happens only when it exceeds the symbol's maximum capacity.
// Callers surface it as a user-facing "generation failed" condition.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("generating QR code: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Rendered is a QR symbol bound to a concrete integer module scale. The
// scale is the largest whole number of pixels per module that keeps the
// image within the dimension cap, and never drops below 1: a symbol too
// large for the cap renders at native module resolution instead of being
// downsampled.
type Rendered struct {
	code    *qrcode.QRCode
	modules int
	scale   int
}

// Render encodes the payload and fixes the module scale for a maxDim×maxDim
// pixel cap. maxDim <= 0 selects DefaultMaxDimension.
func Render(payload string, maxDim int, level qrcode.RecoveryLevel) (*Rendered, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	code, err := qrcode.New(payload, level)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	// Bitmap includes the quiet zone, so the cap applies to the full symbol.
	modules := len(code.Bitmap())
	scale := maxDim / modules
	if scale < 1 {
		scale = 1
	}
	return &Rendered{code: code, modules: modules, scale: scale}, nil
}

// Modules returns the symbol's side length in modules, quiet zone included.
func (r *Rendered) Modules() int { return r.modules }

// Scale returns the chosen pixels-per-module scale.
func (r *Rendered) Scale() int { return r.scale }

// PixelSize returns the side length of the rendered image in pixels.
func (r *Rendered) PixelSize() int { return r.modules * r.scale }

// Bitmap returns the symbol's module matrix, quiet zone included.
func (r *Rendered) Bitmap() [][]bool { return r.code.Bitmap() }

// Image rasterizes the symbol at the bound scale. A negative size tells
// go-qrcode to draw each module at exactly |size| pixels.
func (r *Rendered) Image() image.Image { return r.code.Image(-r.scale) }

// PNG returns the rasterized symbol encoded as PNG bytes.
func (r *Rendered) PNG() ([]byte, error) {
	data, err := r.code.PNG(-r.scale)
	if err != nil {
		return nil, fmt.Errorf("encoding QR image as PNG: %w", err)
	}
	return data, nil
}
