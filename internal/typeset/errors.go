// SPDX-License-Identifier: MPL-2.0

package typeset

import "fmt"

type (
	// CompilerUnavailableError means the LaTeX compiler binary is not on
	// PATH. Remediation carries per-platform install instructions for the
	// CLI layer to render.
	CompilerUnavailableError struct {
		Compiler string
	}

	// CompileError means the compiler ran but exited with a failure status.
	// The tail of the compiler's log file is preserved alongside the
	// captured streams, since LaTeX reports most problems there rather
	// than on stderr.
	CompileError struct {
		Compiler string
		ExitCode int
		Stdout   string
		Stderr   string
		Log      string
	}
)

func (e *CompilerUnavailableError) Error() string {
	return fmt.Sprintf("LaTeX compiler %q not found on PATH", e.Compiler)
}

// Remediation returns markdown install instructions for the missing
// compiler, covering the common TeX distributions per platform.
func (e *CompilerUnavailableError) Remediation() string {
	return fmt.Sprintf(`No LaTeX distribution was found. Ensure that the %q command is available.

**Windows**

[MiKTeX](https://miktex.org/download)

**macOS**

[MacTeX](https://www.tug.org/mactex/mactex-download.html)

**Linux (Debian/Ubuntu)**

`+"```"+`
sudo apt-get install texlive-latex-base texlive-fonts-recommended texlive-lang-english
`+"```"+`

**Linux (Fedora)**

`+"```"+`
sudo dnf install texlive-scheme-basic texlive-collection-fontsrecommended texlive-collection-langenglish
`+"```", e.Compiler)
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Compiler, e.ExitCode)
	if e.Log != "" {
		msg += "\n\nlog tail:\n" + e.Log
	}
	if e.Stderr != "" {
		msg += "\n\nstderr:\n" + e.Stderr
	}
	return msg
}
