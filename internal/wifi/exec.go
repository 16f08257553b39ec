// SPDX-License-Identifier: MPL-2.0

package wifi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// commandTimeout bounds every native tool invocation so a hung platform
// tool cannot hang the whole run.
const commandTimeout = 10 * time.Second

type (
	// execResult captures a finished subprocess. exitCode is zero on success;
	// a nonzero exitCode with a nil error means the tool ran but failed.
	execResult struct {
		stdout   string
		stderr   string
		exitCode int
	}

	// runnerFunc launches a native tool and waits for it. It returns an error
	// only when the process could not be started at all; tests substitute
	// fakes to exercise parsing and failure paths without the real tools.
	runnerFunc func(ctx context.Context, name string, args ...string) (execResult, error)
)

// runCommand is the production runnerFunc.
func runCommand(ctx context.Context, name string, args ...string) (execResult, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := execResult{stdout: stdout.String(), stderr: stderr.String()}
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

type (
	// EnumerationError means the native profile-listing tool was unusable:
	// it could not be launched, or it exited with a failure status. The
	// tool's stderr is preserved for diagnostics. Callers treat this as a
	// signal to fall back to manual entry, not as a process-fatal error.
	EnumerationError struct {
		Tool   string
		Stderr string
		Err    error
	}

	// CredentialLookupError means the native secret-store tool itself could
	// not be invoked. "Not found" and "access denied" responses are NOT
	// errors; they surface as an absent password instead.
	CredentialLookupError struct {
		Tool string
		Err  error
	}
)

func (e *EnumerationError) Error() string {
	msg := fmt.Sprintf("enumerating Wi-Fi networks with %s", e.Tool)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *EnumerationError) Unwrap() error { return e.Err }

func (e *CredentialLookupError) Error() string {
	return fmt.Sprintf("looking up stored password with %s: %v", e.Tool, e.Err)
}

func (e *CredentialLookupError) Unwrap() error { return e.Err }
