// SPDX-License-Identifier: MPL-2.0

package wifi

import "testing"

func TestClassifyNmcliKeyMgmt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  SecurityType
	}{
		{"wpa-psk", SecurityWPA},
		{"sae", SecurityWPA},
		{"wpa-eap", SecurityWPA},
		{"wep-psk", SecurityWEP},
		{"wep-key", SecurityWEP},
		{"none", SecurityOpen},
		{"owe", SecurityOpen},
		{"ieee8021x", SecurityUnknown},
		{"", SecurityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyNmcliKeyMgmt(tt.token); got != tt.want {
				t.Errorf("ClassifyNmcliKeyMgmt(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestClassifyNetshAuthentication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		auth string
		want SecurityType
	}{
		{"WPA2PSK", SecurityWPA},
		{"WPA2-Personal", SecurityWPA},
		{"WPA3SAE", SecurityWPA},
		{"wpa-personal", SecurityWPA},
		{"WEP", SecurityWEP},
		{"Open", SecurityOpen},
		{"Shared", SecurityUnknown},
		{"", SecurityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.auth, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyNetshAuthentication(tt.auth); got != tt.want {
				t.Errorf("ClassifyNetshAuthentication(%q) = %q, want %q", tt.auth, got, tt.want)
			}
		})
	}
}

func TestResolveSecurity(t *testing.T) {
	t.Parallel()

	decline := SecurityPrompt(func() string { return "" })

	tests := []struct {
		name     string
		detected SecurityType
		password string
		prompt   SecurityPrompt
		want     SecurityType
	}{
		{"detected wins", SecurityWEP, "secret", func() string { return "WPA" }, SecurityWEP},
		{"empty password is open", SecurityUnknown, "", decline, SecurityOpen},
		{"declined prompt defaults to WPA", SecurityUnknown, "s3cr3t!", decline, SecurityWPA},
		{"nil prompt defaults to WPA", SecurityUnknown, "s3cr3t!", nil, SecurityWPA},
		{"explicit WEP honored", SecurityUnknown, "secret", func() string { return "wep" }, SecurityWEP},
		{"explicit nopass honored", SecurityUnknown, "secret", func() string { return "nopass" }, SecurityOpen},
		{"wpa3 collapses to WPA", SecurityUnknown, "secret", func() string { return "WPA3" }, SecurityWPA},
		{"garbage defaults to WPA", SecurityUnknown, "secret", func() string { return "ROT13" }, SecurityWPA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveSecurity(tt.detected, tt.password, tt.prompt); got != tt.want {
				t.Errorf("ResolveSecurity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSecurityInput_Unrecognized(t *testing.T) {
	t.Parallel()

	if sec, ok := ParseSecurityInput("enterprise"); ok || sec != SecurityUnknown {
		t.Errorf("ParseSecurityInput = (%q, %v), want (unknown, false)", sec, ok)
	}
}
