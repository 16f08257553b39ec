// SPDX-License-Identifier: MPL-2.0

package wifi

import "strings"

// nmcliKeyMgmt maps NetworkManager key management tokens to the canonical
// security types. "sae" is WPA3-Personal and "owe" is Wi-Fi Enhanced Open;
// both fold into the three-valued QR vocabulary.
var nmcliKeyMgmt = map[string]SecurityType{
	"wpa-psk": SecurityWPA,
	"sae":     SecurityWPA,
	"wpa-eap": SecurityWPA,
	"wep-psk": SecurityWEP,
	"wep-key": SecurityWEP,
	"none":    SecurityOpen,
	"owe":     SecurityOpen,
}

// ClassifyNmcliKeyMgmt maps an nmcli key management token to a canonical
// security type. Unrecognized tokens yield SecurityUnknown, never an error,
// so the caller can proceed with manual classification.
func ClassifyNmcliKeyMgmt(token string) SecurityType {
	return nmcliKeyMgmt[token]
}

// ClassifyNetshAuthentication maps a netsh "Authentication" value to a
// canonical security type. netsh's vocabulary varies across Windows versions
// ("WPA2-Personal", "WPA2PSK", ...), so matching is by substring on the
// uppercased value.
func ClassifyNetshAuthentication(auth string) SecurityType {
	auth = strings.ToUpper(strings.TrimSpace(auth))
	switch {
	case auth == "":
		return SecurityUnknown
	case strings.Contains(auth, "WPA"):
		// WPAPSK, WPA2PSK, WPA3SAE, WPA-PERSONAL, WPA2-PERSONAL, WPA3-PERSONAL, enterprise variants.
		return SecurityWPA
	case strings.Contains(auth, "WEP"):
		return SecurityWEP
	case strings.Contains(auth, "OPEN"):
		return SecurityOpen
	default:
		return SecurityUnknown
	}
}

// SecurityPrompt asks the user for an explicit security type and returns the
// raw input. An empty return means the user declined to specify.
type SecurityPrompt func() string

// ResolveSecurity applies the resolution policy for records whose security
// type is absent after enumeration:
//
//   - a detected type always wins;
//   - an empty resolved password classifies the network as open;
//   - otherwise the prompt (if any) is consulted, and empty or invalid
//     input defaults to WPA.
func ResolveSecurity(detected SecurityType, password string, prompt SecurityPrompt) SecurityType {
	if detected.Known() {
		return detected
	}
	if password == "" {
		return SecurityOpen
	}
	if prompt != nil {
		if sec, ok := ParseSecurityInput(prompt()); ok {
			return sec
		}
	}
	return SecurityWPA
}

// ParseSecurityInput normalizes a user-entered security type. WPA, WPA2 and
// WPA3 all collapse to WPA. ok is false for empty or unrecognized input.
func ParseSecurityInput(input string) (SecurityType, bool) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "WPA", "WPA2", "WPA3":
		return SecurityWPA, true
	case "WEP":
		return SecurityWEP, true
	case "NOPASS", "OPEN", "NONE":
		return SecurityOpen, true
	default:
		return SecurityUnknown, false
	}
}
