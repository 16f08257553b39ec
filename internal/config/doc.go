// SPDX-License-Identifier: MPL-2.0

// Package config loads qrlan's configuration.
//
// The config file is optional TOML at a platform-specific location
// (%APPDATA% on Windows, ~/Library/Application Support on macOS,
// $XDG_CONFIG_HOME elsewhere). Every key has a default and can be
// overridden through QRLAN_* environment variables.
package config
