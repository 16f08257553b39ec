// SPDX-License-Identifier: MPL-2.0

//go:build windows

package wifi

// DefaultBackend returns the platform's network profile backend.
func DefaultBackend() Backend {
	return NewNetshBackend()
}
