// SPDX-License-Identifier: MPL-2.0

// qrlan turns stored Wi-Fi credentials into shareable QR codes: printed to
// the console or exported as PNG, JPG, SVG, or a typeset PDF.
package main

func main() {
	Execute()
}
