// SPDX-License-Identifier: MPL-2.0

package version

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidVersionFormat is the sentinel error wrapped by InvalidVersionFormatError.
	ErrInvalidVersionFormat = errors.New("invalid version format")
	// ErrInvalidSoVersionType is the sentinel error wrapped by InvalidSoVersionTypeError.
	ErrInvalidSoVersionType = errors.New("invalid soversion type")
)

type (
	// Version is a dot-separated sequence of non-negative integers (e.g., "1.2.3").
	// The zero value ("") means the target declares no version.
	Version string

	// SoVersion is the ABI compatibility token used in runtime file names.
	// It is opaque: any string is accepted. The zero value ("") means absent.
	SoVersion string

	// InvalidVersionFormatError is returned when a Version is not composed of
	// dot-separated non-negative integers.
	InvalidVersionFormatError struct {
		Value Version
	}

	// Spec is the normalized version metadata of one library target.
	// It is a value type; copies are independent and never mutated.
	Spec struct {
		Version   Version   `json:"version,omitempty" toml:"version,omitempty"`
		SoVersion SoVersion `json:"soversion,omitempty" toml:"soversion,omitempty"`
	}
)

// String returns the string representation of the Version.
func (v Version) String() string { return string(v) }

// IsPresent reports whether a version was declared.
func (v Version) IsPresent() bool { return v != "" }

// Validate returns an error if the Version is present but malformed.
// The zero value is valid.
func (v Version) Validate() error {
	if v == "" {
		return nil
	}
	for _, part := range strings.Split(string(v), ".") {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return &InvalidVersionFormatError{Value: v}
		}
	}
	return nil
}

// Major returns the first component of the Version, or "" when absent.
func (v Version) Major() string {
	major, _, _ := strings.Cut(string(v), ".")
	return major
}

// String returns the string representation of the SoVersion.
func (s SoVersion) String() string { return string(s) }

// IsPresent reports whether a soversion was declared.
func (s SoVersion) IsPresent() bool { return s != "" }

// Error implements the error interface.
func (e *InvalidVersionFormatError) Error() string {
	return fmt.Sprintf("invalid version %q: must be dot-separated non-negative integers", e.Value)
}

// Unwrap returns ErrInvalidVersionFormat so callers can use errors.Is for programmatic detection.
func (e *InvalidVersionFormatError) Unwrap() error { return ErrInvalidVersionFormat }

// Normalize builds a Spec from the version and soversion exactly as declared
// by the caller. A nil token means no soversion. The only failure is a
// present-but-malformed version; soversion tokens are never validated.
func Normalize(rawVersion Version, rawSoVersion SoVersionToken) (Spec, error) {
	if err := rawVersion.Validate(); err != nil {
		return Spec{}, err
	}
	spec := Spec{Version: rawVersion}
	if rawSoVersion != nil {
		spec.SoVersion = SoVersion(rawSoVersion.String())
	}
	return spec, nil
}

// EffectiveSoVersion returns the soversion used for naming: the declared
// soversion if present, otherwise the major component of the version.
// The boolean is false when neither was declared.
func (s Spec) EffectiveSoVersion() (SoVersion, bool) {
	if s.SoVersion.IsPresent() {
		return s.SoVersion, true
	}
	if s.Version.IsPresent() {
		return SoVersion(s.Version.Major()), true
	}
	return "", false
}

// IsZero reports whether the Spec declares neither version nor soversion.
func (s Spec) IsZero() bool {
	return !s.Version.IsPresent() && !s.SoVersion.IsPresent()
}

// String renders the Spec for diagnostics, e.g. "version=1.2.3 soversion=0".
func (s Spec) String() string {
	if s.IsZero() {
		return "unversioned"
	}
	var parts []string
	if s.Version.IsPresent() {
		parts = append(parts, "version="+string(s.Version))
	}
	if s.SoVersion.IsPresent() {
		parts = append(parts, "soversion="+string(s.SoVersion))
	}
	return strings.Join(parts, " ")
}
