// SPDX-License-Identifier: MPL-2.0

//go:build !linux && !darwin && !windows

package wifi

import "context"

// DefaultBackend returns the platform's network profile backend. On
// unsupported platforms it lists nothing, which routes the caller into the
// manual-entry flow.
func DefaultBackend() Backend {
	return unsupportedBackend{}
}

type unsupportedBackend struct{}

func (unsupportedBackend) Name() string { return "unsupported" }

func (unsupportedBackend) ListKnownNetworks(context.Context) ([]Network, error) {
	return nil, nil
}

func (unsupportedBackend) ResolvePassword(context.Context, string) (string, bool, error) {
	return "", false, nil
}
