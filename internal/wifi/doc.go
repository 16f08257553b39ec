// SPDX-License-Identifier: MPL-2.0

// Package wifi enumerates the host's known Wi-Fi networks and resolves their
// stored credentials.
//
// Each supported platform ships a Backend implementation over its native
// tooling: nmcli on Linux, networksetup plus the security keychain tool on
// macOS, and netsh on Windows. All backends satisfy the same contract and
// the concrete one is selected at build time (see backend_*.go).
//
// Enumeration is best effort: output lines that do not match the expected
// shape are skipped, and a successful run that lists no wireless profiles
// returns an empty slice rather than an error. Missing passwords and
// unclassifiable security types are modeled as absent values, never as
// errors, so callers can always fall back to manual entry.
package wifi
