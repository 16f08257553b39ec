// SPDX-License-Identifier: MPL-2.0

// Package qr builds Wi-Fi join-code payloads and renders them as QR symbols.
//
// The payload follows the WIFI: text convention; rendering goes through
// skip2/go-qrcode with a uniform pixel-dimension cap, and a separate
// double-density block-character path serves terminal output.
package qr
