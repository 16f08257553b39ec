// SPDX-License-Identifier: MPL-2.0

package export

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

// renderSVG emits the QR matrix as vector data: a white background and one
// unit rect per dark module, with the viewBox in module units so the
// document scales without resampling. The matrix already includes the quiet
// zone. scale only sets the document's nominal pixel size.
func renderSVG(bitmap [][]bool, scale int) []byte {
	modules := len(bitmap)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(modules*scale, modules*scale, 0, 0, modules, modules)
	canvas.Rect(0, 0, modules, modules, "fill:#ffffff")
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				canvas.Rect(x, y, 1, 1, "fill:#000000")
			}
		}
	}
	canvas.End()
	return buf.Bytes()
}
