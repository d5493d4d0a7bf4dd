// SPDX-License-Identifier: MPL-2.0

// Package config loads the libart user configuration with Viper, using CUE as
// the file format.
//
// The file is config.cue in the platform configuration directory
// ($XDG_CONFIG_HOME/libart on Linux, ~/Library/Application Support/libart on
// macOS, %APPDATA%\libart on Windows). It is validated against the embedded
// config_schema.cue. Every key can be overridden with a LIBART_ environment
// variable, dots replaced by underscores (LIBART_INSTALL_LIBDIR).
package config
