// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "compile PDF"},
			want: "failed to compile PDF",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "stage QR image", Resource: "/tmp/out"},
			want: "failed to stage QR image: /tmp/out",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "list Wi-Fi profiles",
				Resource:  "nmcli",
				Cause:     errors.New("executable not found"),
			},
			want: "failed to list Wi-Fi profiles: nmcli: executable not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "resolve password")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 1")
	err := NewErrorContext().
		WithOperation("compile PDF").
		WithResource("pdflatex").
		WithSuggestion("Install a TeX distribution").
		WithSuggestion("Check your PATH").
		Wrap(cause).
		Build()

	if err.Operation != "compile PDF" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "pdflatex" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if len(err.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("compile PDF").
		WithSuggestion("Install MiKTeX").
		Wrap(errors.New("exit status 1")).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "• Install MiKTeX") {
		t.Errorf("suggestions missing from output: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("non-verbose output should not contain the error chain: %q", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Errorf("verbose output should contain the error chain: %q", long)
	}
}

func TestRenderMarkdown_FallsBackOnError(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	render = func(in, style string) (string, error) {
		return "", errors.New("no terminal")
	}
	const md = "# Heading"
	if got := RenderMarkdown(md); got != md {
		t.Errorf("expected raw markdown fallback, got %q", got)
	}
}
