// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error context for qrlan.
//
// ActionableError carries what operation failed, which resource was involved,
// and concrete suggestions for fixing the problem. Longer remediation pages
// (for example, how to install a TeX distribution) are written in Markdown
// and rendered for the terminal with glamour.
package issue
