// SPDX-License-Identifier: MPL-2.0

package qr

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// RenderConsole renders the payload as double-density Unicode half-blocks,
// two module rows per text line. This path is independent of the bitmap
// renderer: terminal cells are not pixels. The returned width is the visual
// width in character cells, which callers use to center the SSID caption.
func RenderConsole(payload string, level qrcode.RecoveryLevel) (text string, width int, err error) {
	code, err := qrcode.New(payload, level)
	if err != nil {
		return "", 0, &RenderError{Err: err}
	}

	bitmap := code.Bitmap()
	size := len(bitmap)

	darkAt := func(y, x int) bool {
		if y < 0 || x < 0 || y >= size || x >= len(bitmap[y]) {
			return false
		}
		return bitmap[y][x]
	}

	var b strings.Builder
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			top := darkAt(y, x)
			bottom := darkAt(y+1, x)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), size, nil
}

// CenterLabel pads the label for display under a render of the given width:
// floor((width−len)/2) leading spaces, or none when the label is at least as
// wide as the render. Widths count runes, not bytes.
func CenterLabel(label string, width int) string {
	labelWidth := len([]rune(label))
	if labelWidth >= width {
		return label
	}
	return strings.Repeat(" ", (width-labelWidth)/2) + label
}
