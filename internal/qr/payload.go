// SPDX-License-Identifier: MPL-2.0

package qr

import (
	"strings"

	"github.com/Julian-Bruyers/qrlan-cli/internal/wifi"
)

// BuildPayload encodes network credentials into the Wi-Fi QR text format:
//
//	WIFI:S:<ssid>;T:<security>;[P:<password>;];
//
// The SSID and security segments are always present; the password segment is
// emitted only for a non-empty password on a non-open network. SSID and
// password are embedded verbatim, byte-for-byte compatible with the payloads
// qrlan has always produced.
func BuildPayload(ssid, password string, security wifi.SecurityType) string {
	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(ssid)
	b.WriteString(";T:")
	b.WriteString(string(security))
	b.WriteString(";")
	if password != "" && security != wifi.SecurityOpen {
		b.WriteString("P:")
		b.WriteString(password)
		b.WriteString(";")
	}
	b.WriteString(";")
	return b.String()
}
