// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

// render is a seam for tests; defaults to glamour's one-shot renderer.
var render = glamour.Render

// RenderMarkdown renders a Markdown remediation page for terminal display.
// If glamour fails (unknown terminal, broken style), the raw Markdown is
// returned so the user still sees the text.
func RenderMarkdown(md string) string {
	out, err := render(md, "auto")
	if err != nil {
		return md
	}
	return out
}
