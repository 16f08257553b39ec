// SPDX-License-Identifier: MPL-2.0

package wifi

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// nmcliFields is the terse field list requested from nmcli. The PSK column
// is only populated when NetworkManager lets the calling user read secrets.
const nmcliFields = "GENERAL.NAME,802-11-WIRELESS.SSID,802-11-WIRELESS-SECURITY.KEY-MGMT,802-11-WIRELESS-SECURITY.PSK,TYPE"

// NmcliBackend enumerates saved connections through NetworkManager's nmcli.
// nmcli conveniently reports SSID, key management and (permissions allowing)
// the PSK in a single query, so records come back fully populated inline.
type NmcliBackend struct {
	run runnerFunc
}

// NewNmcliBackend returns a Backend over the nmcli tool.
func NewNmcliBackend() *NmcliBackend {
	return &NmcliBackend{run: runCommand}
}

// Name implements Backend.
func (b *NmcliBackend) Name() string { return "nmcli" }

// ListKnownNetworks implements Backend.
func (b *NmcliBackend) ListKnownNetworks(ctx context.Context) ([]Network, error) {
	res, err := b.run(ctx, "nmcli", "-t", "-f", nmcliFields, "connection", "show")
	if err != nil {
		return nil, &EnumerationError{Tool: "nmcli", Err: err}
	}
	if res.exitCode != 0 {
		return nil, &EnumerationError{
			Tool:   "nmcli",
			Stderr: strings.TrimSpace(res.stderr),
			Err:    fmt.Errorf("exit status %d", res.exitCode),
		}
	}
	return parseNmcliConnections(res.stdout), nil
}

// ResolvePassword implements Backend. It re-queries the single profile with
// secrets revealed. NetworkManager answers "not authorized" or prints
// nothing when the secret is unavailable; both map to ok=false.
func (b *NmcliBackend) ResolvePassword(ctx context.Context, ssid string) (string, bool, error) {
	res, err := b.run(ctx, "nmcli", "-s", "-g", "802-11-wireless-security.psk", "connection", "show", ssid)
	if err != nil {
		return "", false, &CredentialLookupError{Tool: "nmcli", Err: err}
	}
	if res.exitCode != 0 {
		return "", false, nil
	}
	psk := strings.TrimSpace(res.stdout)
	if psk == "" {
		return "", false, nil
	}
	return psk, true, nil
}

// parseNmcliConnections turns nmcli's terse output into networks. Expected
// line shape after splitting on ':':
//
//	NAME:SSID_HEX:KEY_MGMT:PSK:TYPE
//
// Only 802-11-wireless rows are kept; anything else (VPN, ethernet, lines
// with an unexpected field count) is skipped silently.
func parseNmcliConnections(out string) []Network {
	var networks []Network
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) < 5 || fields[4] != "802-11-wireless" {
			continue
		}
		name := fields[0]

		ssid := decodeNmcliSSID(fields[1], name)
		if ssid == "" {
			continue
		}

		psk := fields[3]
		networks = append(networks, Network{
			SSID:          ssid,
			Password:      psk,
			PasswordKnown: psk != "",
			Security:      ClassifyNmcliKeyMgmt(fields[2]),
		})
	}
	return networks
}

// decodeNmcliSSID decodes the hex-encoded SSID column, falling back to the
// connection profile name when the field is empty, not valid hex, or not
// valid UTF-8 after decoding.
func decodeNmcliSSID(ssidHex, profileName string) string {
	if ssidHex == "" {
		return profileName
	}
	raw, err := hex.DecodeString(ssidHex)
	if err != nil || !utf8.Valid(raw) {
		return profileName
	}
	return string(raw)
}
