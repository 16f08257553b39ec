// SPDX-License-Identifier: MPL-2.0

package wifi

import (
	"context"
	"errors"
	"testing"
)

const hardwarePortsOutput = `Hardware Port: Ethernet
Device: en1
Ethernet Address: 00:00:00:00:00:01

Hardware Port: Wi-Fi
Device: en0
Ethernet Address: 00:00:00:00:00:02

Hardware Port: Thunderbolt Bridge
Device: bridge0
Ethernet Address: N/A
`

func TestParseHardwarePorts(t *testing.T) {
	t.Parallel()

	if got := parseHardwarePorts(hardwarePortsOutput); got != "en0" {
		t.Errorf("parseHardwarePorts = %q, want en0", got)
	}
}

func TestParseHardwarePorts_AirPortLegacyName(t *testing.T) {
	t.Parallel()

	out := "Hardware Port: AirPort\nDevice: en1\n"
	if got := parseHardwarePorts(out); got != "en1" {
		t.Errorf("parseHardwarePorts = %q, want en1", got)
	}
}

func TestParseHardwarePorts_NoWifi(t *testing.T) {
	t.Parallel()

	out := "Hardware Port: Ethernet\nDevice: en1\n"
	if got := parseHardwarePorts(out); got != "" {
		t.Errorf("parseHardwarePorts = %q, want empty", got)
	}
}

func TestParsePreferredNetworks(t *testing.T) {
	t.Parallel()

	out := "Preferred networks on en0:\n\tHome 5G\n\tGuest\n\n\tCafé WLAN\n"
	networks := parsePreferredNetworks(out)
	if len(networks) != 3 {
		t.Fatalf("expected 3 networks, got %d", len(networks))
	}
	want := []string{"Home 5G", "Guest", "Café WLAN"}
	for i, w := range want {
		if networks[i].SSID != w {
			t.Errorf("networks[%d].SSID = %q, want %q", i, networks[i].SSID, w)
		}
		if networks[i].PasswordKnown || networks[i].Security.Known() {
			t.Errorf("networks[%d] should carry neither password nor security", i)
		}
	}
}

func TestParsePreferredNetworks_HeaderOnly(t *testing.T) {
	t.Parallel()

	if got := parsePreferredNetworks("Preferred networks on en0:\n"); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

// scriptedRunner replays results keyed by the invoked tool's first argument.
func scriptedRunner(t *testing.T, script map[string]execResult) runnerFunc {
	t.Helper()
	return func(_ context.Context, name string, args ...string) (execResult, error) {
		key := name
		if len(args) > 0 {
			key += " " + args[0]
		}
		res, found := script[key]
		if !found {
			t.Fatalf("unexpected command: %s %v", name, args)
		}
		return res, nil
	}
}

func TestNetworksetupBackend_ListKnownNetworks(t *testing.T) {
	t.Parallel()

	b := &NetworksetupBackend{run: scriptedRunner(t, map[string]execResult{
		"networksetup -listallhardwareports":          {stdout: hardwarePortsOutput},
		"networksetup -listpreferredwirelessnetworks": {stdout: "Preferred networks on en0:\n\tHome 5G\n"},
	})}

	networks, err := b.ListKnownNetworks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(networks) != 1 || networks[0].SSID != "Home 5G" {
		t.Errorf("unexpected networks: %+v", networks)
	}
}

func TestNetworksetupBackend_ListKnownNetworks_NotAWifiInterface(t *testing.T) {
	t.Parallel()

	b := &NetworksetupBackend{run: scriptedRunner(t, map[string]execResult{
		"networksetup -listallhardwareports":          {stdout: hardwarePortsOutput},
		"networksetup -listpreferredwirelessnetworks": {exitCode: 1, stderr: "en0 is not a Wi-Fi interface.\n"},
	})}

	_, err := b.ListKnownNetworks(context.Background())
	var enumErr *EnumerationError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected *EnumerationError, got %T", err)
	}
	if enumErr.Stderr == "" {
		t.Error("stderr should be preserved for diagnostics")
	}
}

func TestNetworksetupBackend_ResolvePassword_AbsentOnDenied(t *testing.T) {
	t.Parallel()

	// A denied keychain prompt and a missing item are indistinguishable:
	// the security tool just exits nonzero.
	b := &NetworksetupBackend{run: staticRunner(execResult{
		exitCode: 44,
		stderr:   "security: SecKeychainSearchCopyNext: The specified item could not be found in the keychain.",
	}, nil)}

	pass, ok, err := b.ResolvePassword(context.Background(), "Home 5G")
	if err != nil {
		t.Fatalf("denied lookup must not be an error, got %v", err)
	}
	if ok || pass != "" {
		t.Errorf("expected absent password, got (%q, %v)", pass, ok)
	}
}

func TestNetworksetupBackend_ResolvePassword_Found(t *testing.T) {
	t.Parallel()

	b := &NetworksetupBackend{run: staticRunner(execResult{stdout: "hunter2\n"}, nil)}
	pass, ok, err := b.ResolvePassword(context.Background(), "Home 5G")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || pass != "hunter2" {
		t.Errorf("ResolvePassword = (%q, %v), want (hunter2, true)", pass, ok)
	}
}
