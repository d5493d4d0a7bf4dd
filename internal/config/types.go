// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/libart/libart/pkg/artifact"
	"github.com/libart/libart/pkg/platform"
)

const (
	// PlatformAuto selects the host platform family.
	PlatformAuto PlatformSetting = "auto"

	// OutputFormatText renders tables for terminals.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON renders an indented JSON report.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatTOML renders a TOML report.
	OutputFormatTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidPlatformSetting is the sentinel error wrapped by InvalidPlatformSettingError.
	ErrInvalidPlatformSetting = errors.New("invalid platform setting")
	// ErrInvalidOutputFormat is the sentinel error wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// PlatformSetting is "auto" or a platform family name.
	PlatformSetting string

	// InvalidPlatformSettingError is returned when a PlatformSetting is not
	// "auto" and not a known platform family.
	InvalidPlatformSettingError struct {
		Value PlatformSetting
	}

	// OutputFormat selects the report encoding.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects every invalid field of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the libart user configuration.
	Config struct {
		Platform     PlatformSetting `json:"platform" mapstructure:"platform"`
		OutputFormat OutputFormat    `json:"output_format" mapstructure:"output_format"`
		Install      InstallConfig   `json:"install" mapstructure:"install"`
		UI           UIConfig        `json:"ui" mapstructure:"ui"`
	}

	// InstallConfig holds the default install destinations.
	InstallConfig struct {
		BinDir    string `json:"bindir" mapstructure:"bindir"`
		LibDir    string `json:"libdir" mapstructure:"libdir"`
		ModuleDir string `json:"moduledir" mapstructure:"moduledir"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the PlatformSetting.
func (p PlatformSetting) String() string { return string(p) }

// Validate returns an error if the setting is neither "auto" nor a platform family.
func (p PlatformSetting) Validate() error {
	if p == PlatformAuto {
		return nil
	}
	if err := platform.Kind(p).Validate(); err != nil {
		return &InvalidPlatformSettingError{Value: p}
	}
	return nil
}

// Kind returns the configured platform family. ok is false for "auto".
func (p PlatformSetting) Kind() (kind platform.Kind, ok bool) {
	if p == PlatformAuto || p == "" {
		return "", false
	}
	return platform.Kind(p), true
}

// Error implements the error interface.
func (e *InvalidPlatformSettingError) Error() string {
	return fmt.Sprintf("invalid platform setting %q (valid: auto, pe, pe-gnu, elf, macho)", e.Value)
}

// Unwrap returns ErrInvalidPlatformSetting so callers can use errors.Is for programmatic detection.
func (e *InvalidPlatformSettingError) Unwrap() error { return ErrInvalidPlatformSetting }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// Validate returns an error if the OutputFormat is not a known variant.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat so callers can use errors.Is for programmatic detection.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not a known variant.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Layout converts the install settings into an artifact.Layout.
func (i InstallConfig) Layout() artifact.Layout {
	return artifact.Layout{BinDir: i.BinDir, LibDir: i.LibDir, ModuleDir: i.ModuleDir}
}

// Validate returns an error if any field is invalid. Environment overrides
// bypass the CUE schema, so the checks are repeated here.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Platform.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.OutputFormat.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Install.Layout().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns the sentinel and every field error.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	layout := artifact.DefaultLayout()
	return &Config{
		Platform:     PlatformAuto,
		OutputFormat: OutputFormatText,
		Install: InstallConfig{
			BinDir:    layout.BinDir,
			LibDir:    layout.LibDir,
			ModuleDir: layout.ModuleDir,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
