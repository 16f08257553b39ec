// SPDX-License-Identifier: MPL-2.0

package wifi

import (
	"context"
	"fmt"
	"strings"
)

// NetworksetupBackend enumerates preferred networks on macOS. networksetup
// only lists SSIDs, so passwords and security types come back absent and are
// resolved later: the password through the login keychain, the security type
// through the resolution policy.
type NetworksetupBackend struct {
	run runnerFunc
}

// NewNetworksetupBackend returns a Backend over networksetup and the
// keychain's security tool.
func NewNetworksetupBackend() *NetworksetupBackend {
	return &NetworksetupBackend{run: runCommand}
}

// Name implements Backend.
func (b *NetworksetupBackend) Name() string { return "networksetup" }

// ListKnownNetworks implements Backend.
func (b *NetworksetupBackend) ListKnownNetworks(ctx context.Context) ([]Network, error) {
	device, err := b.wifiDevice(ctx)
	if err != nil {
		return nil, err
	}

	res, err := b.run(ctx, "networksetup", "-listpreferredwirelessnetworks", device)
	if err != nil {
		return nil, &EnumerationError{Tool: "networksetup", Err: err}
	}
	if res.exitCode != 0 {
		stderr := strings.TrimSpace(res.stderr)
		if strings.Contains(stderr, "is not a Wi-Fi interface") {
			return nil, &EnumerationError{
				Tool:   "networksetup",
				Stderr: stderr,
				Err:    fmt.Errorf("interface %s is not a Wi-Fi interface", device),
			}
		}
		return nil, &EnumerationError{
			Tool:   "networksetup",
			Stderr: stderr,
			Err:    fmt.Errorf("exit status %d", res.exitCode),
		}
	}
	return parsePreferredNetworks(res.stdout), nil
}

// ResolvePassword implements Backend. It asks the keychain for the generic
// password stored under the SSID. A nonzero exit covers both "item not
// found" and a denied keychain prompt; neither is distinguishable here and
// both mean absent.
func (b *NetworksetupBackend) ResolvePassword(ctx context.Context, ssid string) (string, bool, error) {
	res, err := b.run(ctx, "security", "find-generic-password", "-wa", ssid)
	if err != nil {
		return "", false, &CredentialLookupError{Tool: "security", Err: err}
	}
	if res.exitCode != 0 {
		return "", false, nil
	}
	pass := strings.TrimSpace(res.stdout)
	if pass == "" {
		return "", false, nil
	}
	return pass, true, nil
}

// wifiDevice finds the Wi-Fi hardware port's device name (en0, en1, ...).
func (b *NetworksetupBackend) wifiDevice(ctx context.Context) (string, error) {
	res, err := b.run(ctx, "networksetup", "-listallhardwareports")
	if err != nil {
		return "", &EnumerationError{Tool: "networksetup", Err: err}
	}
	if res.exitCode != 0 {
		return "", &EnumerationError{
			Tool:   "networksetup",
			Stderr: strings.TrimSpace(res.stderr),
			Err:    fmt.Errorf("exit status %d", res.exitCode),
		}
	}
	device := parseHardwarePorts(res.stdout)
	if device == "" {
		return "", &EnumerationError{
			Tool: "networksetup",
			Err:  fmt.Errorf("no Wi-Fi interface found"),
		}
	}
	return device, nil
}

// parseHardwarePorts scans `networksetup -listallhardwareports` output for
// the Wi-Fi (or legacy AirPort) port and returns the device name on the
// following line, or "" when none is present.
func parseHardwarePorts(out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "Hardware Port: Wi-Fi") && !strings.Contains(line, "Hardware Port: AirPort") {
			continue
		}
		if i+1 >= len(lines) {
			return ""
		}
		device, found := strings.CutPrefix(strings.TrimSpace(lines[i+1]), "Device: ")
		if found {
			return strings.TrimSpace(device)
		}
	}
	return ""
}

// parsePreferredNetworks extracts SSIDs from the preferred network listing.
// The first line is a header ("Preferred networks on en0:"); the rest are
// indented SSIDs. Empty lines are dropped.
func parsePreferredNetworks(out string) []Network {
	lines := strings.Split(out, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var networks []Network
	for _, line := range lines {
		ssid := strings.TrimSpace(line)
		if ssid == "" {
			continue
		}
		networks = append(networks, Network{SSID: ssid})
	}
	return networks
}
