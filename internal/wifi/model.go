// SPDX-License-Identifier: MPL-2.0

package wifi

import "context"

// SecurityType is the canonical authentication scheme of a network, using
// the Wi-Fi QR wire tokens.
type SecurityType string

const (
	// SecurityWPA covers WPA, WPA2 and WPA3 in both personal and enterprise variants.
	SecurityWPA SecurityType = "WPA"
	// SecurityWEP is legacy WEP.
	SecurityWEP SecurityType = "WEP"
	// SecurityOpen is an open network ("nopass" on the wire).
	SecurityOpen SecurityType = "nopass"
	// SecurityUnknown means the platform could not classify the profile.
	// It is the zero value and stands for "absent", not for an error.
	SecurityUnknown SecurityType = ""
)

// Known reports whether the security type was actually classified.
func (s SecurityType) Known() bool {
	return s != SecurityUnknown
}

// Network is one known Wi-Fi profile reduced to the canonical model.
//
// SSID is never empty once a Network is admitted into a result set.
// Password is meaningful only when PasswordKnown is true; Security is
// SecurityUnknown when the originating platform could not classify the
// profile. Both gaps are filled downstream (credential resolution, the
// security resolution policy) before QR generation.
type Network struct {
	SSID          string
	Password      string
	PasswordKnown bool
	Security      SecurityType
}

// Backend lists known networks and resolves stored secrets on one platform.
//
// ListKnownNetworks returns an empty slice (not an error) when the native
// tool succeeds but reports no wireless profiles; an *EnumerationError when
// the tool cannot be launched or exits with a failure status.
//
// ResolvePassword returns ok=false when the secret is not stored or access
// was denied — the two are indistinguishable and neither is fatal. Only a
// failure to invoke the underlying tool is returned as an error
// (*CredentialLookupError).
type Backend interface {
	Name() string
	ListKnownNetworks(ctx context.Context) ([]Network, error)
	ResolvePassword(ctx context.Context, ssid string) (password string, ok bool, err error)
}
