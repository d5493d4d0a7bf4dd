// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is the sentinel error wrapped by InvalidLayoutError.
var ErrInvalidLayout = errors.New("invalid install layout")

type (
	// Layout holds the default install destinations, relative to the install
	// prefix. Which directory a file lands in depends on the platform: PE
	// runtime DLLs go to BinDir, ELF and Mach-O runtime files to LibDir.
	Layout struct {
		// BinDir receives executables and, on PE, runtime DLLs.
		BinDir string `json:"bindir" toml:"bindir"`
		// LibDir receives import libraries and non-PE shared libraries.
		LibDir string `json:"libdir" toml:"libdir"`
		// ModuleDir receives loadable modules.
		ModuleDir string `json:"moduledir" toml:"moduledir"`
	}

	// InvalidLayoutError is returned when a Layout directory is empty or
	// whitespace-only.
	InvalidLayoutError struct {
		Field string
		Value string
	}
)

// DefaultLayout returns the conventional install layout.
func DefaultLayout() Layout {
	return Layout{
		BinDir:    "bin",
		LibDir:    "lib",
		ModuleDir: "lib",
	}
}

// Validate returns an error if any directory is empty or whitespace-only.
func (l Layout) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"bindir", l.BinDir},
		{"libdir", l.LibDir},
		{"moduledir", l.ModuleDir},
	}
	var errs []error
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, &InvalidLayoutError{Field: f.name, Value: f.value})
		}
	}
	return errors.Join(errs...)
}

// Error implements the error interface.
func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid install layout: %s %q must be non-empty", e.Field, e.Value)
}

// Unwrap returns ErrInvalidLayout so callers can use errors.Is for programmatic detection.
func (e *InvalidLayoutError) Unwrap() error { return ErrInvalidLayout }
