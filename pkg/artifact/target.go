// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/libart/libart/pkg/version"
)

const (
	// KindShared is a library linked against with "-lNAME".
	KindShared Kind = "shared"
	// KindModule is a loadable plugin. It is never linked against, so it has
	// no import library and no link name.
	KindModule Kind = "module"
)

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid library kind")
	// ErrInvalidBaseName is the sentinel error wrapped by InvalidBaseNameError.
	ErrInvalidBaseName = errors.New("invalid library base name")
	// ErrInvalidTarget is the sentinel error wrapped by InvalidTargetError.
	ErrInvalidTarget = errors.New("invalid library target")
)

type (
	// Kind distinguishes shared libraries from loadable modules.
	Kind string

	// InvalidKindError is returned when a Kind is not "shared" or "module".
	InvalidKindError struct {
		Value Kind
	}

	// BaseName is the logical library name (e.g., "some" for "-lsome").
	// It must be non-empty and contain no path separators or whitespace.
	BaseName string

	// InvalidBaseNameError is returned when a BaseName cannot be used as the
	// stem of a file name.
	InvalidBaseNameError struct {
		Value  BaseName
		Reason string
	}

	// LibraryTarget is one declared library as seen by the namer.
	LibraryTarget struct {
		// Name is the logical base name.
		Name BaseName `json:"name" toml:"name"`
		// Spec is the normalized version metadata.
		Spec version.Spec `json:"spec" toml:"spec"`
		// Kind selects shared-library or module naming.
		Kind Kind `json:"kind" toml:"kind"`
		// Install controls whether install copies are produced. Names are
		// resolved either way.
		Install bool `json:"install" toml:"install"`
		// InstallDir, when set, replaces every platform default destination.
		InstallDir string `json:"install_dir,omitempty" toml:"install_dir,omitempty"`
	}

	// InvalidTargetError is returned when a LibraryTarget has invalid fields.
	// It wraps ErrInvalidTarget for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidTargetError struct {
		Name        BaseName
		FieldErrors []error
	}
)

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Validate returns an error if the Kind is not a known variant.
func (k Kind) Validate() error {
	switch k {
	case KindShared, KindModule:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid library kind %q (valid: shared, module)", e.Value)
}

// Unwrap returns ErrInvalidKind so callers can use errors.Is for programmatic detection.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// String returns the string representation of the BaseName.
func (n BaseName) String() string { return string(n) }

// Validate returns an error if the BaseName cannot be used as a file stem.
func (n BaseName) Validate() error {
	switch {
	case n == "":
		return &InvalidBaseNameError{Value: n, Reason: "must be non-empty"}
	case n == "." || n == "..":
		return &InvalidBaseNameError{Value: n, Reason: "must not be a relative path element"}
	case strings.ContainsAny(string(n), `/\`):
		return &InvalidBaseNameError{Value: n, Reason: "must not contain path separators"}
	case strings.IndexFunc(string(n), unicode.IsSpace) >= 0:
		return &InvalidBaseNameError{Value: n, Reason: "must not contain whitespace"}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidBaseNameError) Error() string {
	return fmt.Sprintf("invalid library base name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidBaseName so callers can use errors.Is for programmatic detection.
func (e *InvalidBaseNameError) Unwrap() error { return ErrInvalidBaseName }

// Validate returns an error if the target's name, kind or version metadata
// are invalid.
func (t LibraryTarget) Validate() error {
	var errs []error
	if err := t.Name.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := t.Kind.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := t.Spec.Version.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidTargetError{Name: t.Name, FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidTargetError.
func (e *InvalidTargetError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid library target %q: %v", e.Name, e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid library target %q: %d field error(s)", e.Name, len(e.FieldErrors))
}

// Unwrap returns the sentinel and every field error, so errors.Is matches
// both ErrInvalidTarget and the specific field sentinel.
func (e *InvalidTargetError) Unwrap() []error {
	return append([]error{ErrInvalidTarget}, e.FieldErrors...)
}
