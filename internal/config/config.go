// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// AppName is the application name.
	AppName = "qrlan"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// maxImageDimension is the upper bound accepted for image.max_dimension.
	maxImageDimension = 8192
)

var (
	// ErrInvalidMaxDimension is returned when image.max_dimension is out of range.
	ErrInvalidMaxDimension = errors.New("invalid image max dimension")
	// ErrInvalidRecoveryLevel is returned when image.recovery_level is not recognized.
	ErrInvalidRecoveryLevel = errors.New("invalid recovery level")

	// configDirOverride lets tests redirect the config directory.
	configDirOverride string
)

// recoveryLevels maps config names to go-qrcode error correction levels.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"low":     qrcode.Low,
	"medium":  qrcode.Medium,
	"high":    qrcode.High,
	"highest": qrcode.Highest,
}

type (
	// Config is qrlan's runtime configuration.
	Config struct {
		// OutputDir overrides the default destination directory (the desktop).
		OutputDir string `mapstructure:"output_dir"`
		Image     Image  `mapstructure:"image"`
		PDF       PDF    `mapstructure:"pdf"`
		Update    Update `mapstructure:"update"`
	}

	// Image configures the raster render.
	Image struct {
		// MaxDimension caps rendered width and height in pixels.
		MaxDimension int `mapstructure:"max_dimension"`
		// RecoveryLevel is the QR error correction level: low, medium, high or highest.
		RecoveryLevel string `mapstructure:"recovery_level"`
	}

	// PDF configures the typeset export.
	PDF struct {
		// Compiler is the typesetting compiler binary.
		Compiler string `mapstructure:"compiler"`
		// Design is an optional path to a custom LaTeX layout.
		Design string `mapstructure:"design"`
	}

	// Update configures the release check.
	Update struct {
		// Check enables the startup check for newer releases.
		Check bool `mapstructure:"check"`
	}
)

// SetConfigDirOverride redirects config loading, for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the qrlan configuration directory using platform
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Image: Image{
			MaxDimension:  2400,
			RecoveryLevel: "medium",
		},
		PDF: PDF{
			Compiler: "pdflatex",
		},
		Update: Update{
			Check: true,
		},
	}
}

// Load reads the config file (if present) and environment overrides on top
// of the defaults. A missing config file is not an error.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	v.AddConfigPath(dir)
	v.SetEnvPrefix("QRLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("image.max_dimension", def.Image.MaxDimension)
	v.SetDefault("image.recovery_level", def.Image.RecoveryLevel)
	v.SetDefault("pdf.compiler", def.PDF.Compiler)
	v.SetDefault("pdf.design", def.PDF.Design)
	v.SetDefault("update.check", def.Update.Check)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Image.MaxDimension <= 0 || c.Image.MaxDimension > maxImageDimension {
		return fmt.Errorf("%w: %d (must be between 1 and %d)",
			ErrInvalidMaxDimension, c.Image.MaxDimension, maxImageDimension)
	}
	if _, found := recoveryLevels[strings.ToLower(c.Image.RecoveryLevel)]; !found {
		names := maps.Keys(recoveryLevels)
		slices.Sort(names)
		return fmt.Errorf("%w: %q (must be one of %s)",
			ErrInvalidRecoveryLevel, c.Image.RecoveryLevel, strings.Join(names, ", "))
	}
	return nil
}

// Recovery returns the configured QR error correction level.
func (c *Config) Recovery() qrcode.RecoveryLevel {
	return recoveryLevels[strings.ToLower(c.Image.RecoveryLevel)]
}
