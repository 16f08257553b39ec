// SPDX-License-Identifier: MPL-2.0

//go:build linux

package wifi

// DefaultBackend returns the platform's network profile backend.
func DefaultBackend() Backend {
	return NewNmcliBackend()
}
