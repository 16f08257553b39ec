// SPDX-License-Identifier: MPL-2.0

// Package typeset produces the PDF artifact by compiling an embedded LaTeX
// layout with a local TeX distribution. The compiler works in the
// destination directory through well-known temporary file names; every run
// cleans its workspace up afterwards, whether the compile succeeded or not.
package typeset
