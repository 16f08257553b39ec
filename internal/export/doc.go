// SPDX-License-Identifier: MPL-2.0

// Package export routes a rendered QR code to the requested output format.
//
// Console output prints a block-character render with the SSID centered
// beneath it. PNG and JPG rasterize the symbol and write the file
// atomically (temp file plus rename, silently replacing any previous file).
// SVG emits vector path data straight from the QR matrix with no bitmap
// intermediate. PDF delegates to the typeset exporter, which removes a
// pre-existing destination file before moving its product into place.
package export
