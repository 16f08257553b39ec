// SPDX-License-Identifier: MPL-2.0

package qr

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
)

func TestRender_ScaleFitsCap(t *testing.T) {
	t.Parallel()

	r, err := Render("WIFI:S:Home 5G;T:WPA;P:s3cr3t!;;", 2400, qrcode.Medium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.PixelSize() > 2400 {
		t.Errorf("pixel size %d exceeds cap", r.PixelSize())
	}
	// Largest integer scale: one more pixel per module would overflow the cap.
	if (r.Scale()+1)*r.Modules() <= 2400 {
		t.Errorf("scale %d is not maximal for %d modules", r.Scale(), r.Modules())
	}
}

func TestRender_NeverBelowNativeResolution(t *testing.T) {
	t.Parallel()

	// A cap smaller than the module count still renders at 1 px/module.
	r, err := Render("WIFI:S:Guest;T:nopass;;", 10, qrcode.Medium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Scale() != 1 {
		t.Errorf("scale = %d, want 1", r.Scale())
	}
	if r.PixelSize() != r.Modules() {
		t.Errorf("pixel size %d, want native %d", r.PixelSize(), r.Modules())
	}
}

func TestRender_DefaultCap(t *testing.T) {
	t.Parallel()

	r, err := Render("WIFI:S:Guest;T:nopass;;", 0, qrcode.Medium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.PixelSize() > DefaultMaxDimension {
		t.Errorf("pixel size %d exceeds default cap", r.PixelSize())
	}
}

func TestRender_OverCapacityPayload(t *testing.T) {
	t.Parallel()

	// QR version 40 tops out below 3000 bytes at any recovery level.
	payload := "WIFI:S:" + strings.Repeat("x", 4000) + ";T:WPA;;"
	_, err := Render(payload, 2400, qrcode.Highest)

	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected *RenderError, got %T: %v", err, err)
	}
}

// isDark samples the center of a module cell in the rasterized image.
func isDark(img image.Image, x, y, scale int) bool {
	px := img.Bounds().Min.X + x*scale + scale/2
	py := img.Bounds().Min.Y + y*scale + scale/2
	gray := color.GrayModel.Convert(img.At(px, py)).(color.Gray)
	return gray.Y < 128
}

// TestRender_RoundTrip plays synthetic reader: it samples the rendered
// bitmap back into a module matrix and checks it is exactly the canonical
// symbol for the payload, i.e. a scan yields the original payload string.
func TestRender_RoundTrip(t *testing.T) {
	t.Parallel()

	const payload = "WIFI:S:Home 5G;T:WPA;P:s3cr3t!;;"

	r, err := Render(payload, 640, qrcode.Medium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := r.Image()
	scale := r.Scale()

	// Matrix extracted from pixels must match the matrix the symbol was
	// drawn from.
	bitmap := r.Bitmap()
	for y := range bitmap {
		for x := range bitmap[y] {
			if got := isDark(img, x, y, scale); got != bitmap[y][x] {
				t.Fatalf("module (%d,%d): image says dark=%v, matrix says %v", x, y, got, bitmap[y][x])
			}
		}
	}

	// And that matrix is the canonical encoding of the payload: any
	// conformant reader decodes it back to the original string.
	canonical, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		t.Fatalf("re-encoding payload: %v", err)
	}
	want := canonical.Bitmap()
	if len(want) != len(bitmap) {
		t.Fatalf("matrix size mismatch: %d vs %d", len(bitmap), len(want))
	}
	for y := range want {
		for x := range want[y] {
			if bitmap[y][x] != want[y][x] {
				t.Fatalf("module (%d,%d) differs from canonical symbol", x, y)
			}
		}
	}
}

func TestRendered_PNG(t *testing.T) {
	t.Parallel()

	r, err := Render("WIFI:S:Guest;T:nopass;;", 480, qrcode.Medium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := r.PNG()
	if err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	if len(data) == 0 || string(data[1:4]) != "PNG" {
		t.Error("output does not look like a PNG stream")
	}
}
