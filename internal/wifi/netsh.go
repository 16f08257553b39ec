// SPDX-License-Identifier: MPL-2.0

package wifi

import (
	"context"
	"fmt"
	"strings"
)

// NetshBackend enumerates WLAN profiles on Windows. Listing profiles yields
// only names; a second per-profile query with key=clear fills in the
// password and authentication scheme. The detail query needs administrator
// rights to reveal the key — when it fails the record simply stays partial.
type NetshBackend struct {
	run runnerFunc
}

// NewNetshBackend returns a Backend over the netsh wlan tool.
func NewNetshBackend() *NetshBackend {
	return &NetshBackend{run: runCommand}
}

// Name implements Backend.
func (b *NetshBackend) Name() string { return "netsh" }

// ListKnownNetworks implements Backend.
func (b *NetshBackend) ListKnownNetworks(ctx context.Context) ([]Network, error) {
	res, err := b.run(ctx, "netsh", "wlan", "show", "profiles")
	if err != nil {
		return nil, &EnumerationError{Tool: "netsh", Err: err}
	}
	if res.exitCode != 0 {
		return nil, &EnumerationError{
			Tool:   "netsh",
			Stderr: strings.TrimSpace(res.stderr),
			Err:    fmt.Errorf("exit status %d", res.exitCode),
		}
	}

	var networks []Network
	for _, ssid := range parseNetshProfiles(res.stdout) {
		net := Network{SSID: ssid}
		// Best effort: a failed detail query leaves password and security
		// absent without failing the enumeration.
		if detail, err := b.profileDetail(ctx, ssid); err == nil {
			net.Password = detail.Password
			net.PasswordKnown = detail.PasswordKnown
			net.Security = detail.Security
		}
		networks = append(networks, net)
	}
	return networks, nil
}

// ResolvePassword implements Backend. Enumeration already tried key=clear
// inline; this re-query exists for records constructed manually.
func (b *NetshBackend) ResolvePassword(ctx context.Context, ssid string) (string, bool, error) {
	detail, err := b.profileDetail(ctx, ssid)
	if err != nil {
		return "", false, err
	}
	return detail.Password, detail.PasswordKnown, nil
}

func (b *NetshBackend) profileDetail(ctx context.Context, ssid string) (Network, error) {
	res, err := b.run(ctx, "netsh", "wlan", "show", "profile", "name="+ssid, "key=clear")
	if err != nil {
		return Network{}, &CredentialLookupError{Tool: "netsh", Err: err}
	}
	if res.exitCode != 0 {
		return Network{SSID: ssid}, nil
	}
	return parseNetshProfileDetail(ssid, res.stdout), nil
}

// parseNetshProfiles extracts profile names from `netsh wlan show profiles`.
// Profile lines look like "    All User Profile     : HomeNet"; anything
// without a colon or with an empty right-hand side is skipped.
func parseNetshProfiles(out string) []string {
	var ssids []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Profile") {
			continue
		}
		_, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		ssid := strings.TrimSpace(value)
		if ssid == "" {
			continue
		}
		ssids = append(ssids, ssid)
	}
	return ssids
}

// parseNetshProfileDetail extracts Key Content and Authentication from a
// per-profile key=clear dump. "Not present" keys count as absent.
func parseNetshProfileDetail(ssid, out string) Network {
	net := Network{SSID: ssid}
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Key Content"):
			if _, value, found := strings.Cut(trimmed, ":"); found {
				key := strings.TrimSpace(value)
				if key != "" && !strings.EqualFold(key, "not present") {
					net.Password = key
					net.PasswordKnown = true
				}
			}
		case strings.HasPrefix(trimmed, "Authentication"):
			if _, value, found := strings.Cut(trimmed, ":"); found && !net.Security.Known() {
				net.Security = ClassifyNetshAuthentication(value)
			}
		}
	}
	return net
}
