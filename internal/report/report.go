// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/libart/libart/pkg/artifact"
	"github.com/libart/libart/pkg/platform"
)

const (
	// FormatText renders one lipgloss table per library.
	FormatText Format = "text"
	// FormatJSON renders an indented JSON document.
	FormatJSON Format = "json"
	// FormatTOML renders a TOML document.
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is the sentinel error wrapped by UnknownFormatError.
var ErrUnknownFormat = errors.New("unknown output format")

type (
	// Format selects the report encoding.
	Format string

	// UnknownFormatError is returned when a Format is not recognized.
	UnknownFormatError struct {
		Value Format
	}

	// Report is the result of resolving every library of a buildfile for
	// one platform.
	Report struct {
		Project  string        `json:"project,omitempty" toml:"project,omitempty"`
		Platform platform.Kind `json:"platform" toml:"platform"`
		Entries  []Entry       `json:"libraries" toml:"libraries"`
	}

	// Entry pairs a library with its resolved files.
	Entry struct {
		Library   artifact.LibraryTarget     `json:"library" toml:"library"`
		Artifacts artifact.ResolvedArtifacts `json:"artifacts" toml:"artifacts"`
		// Warnings are non-fatal findings, such as reserved device names.
		Warnings []string `json:"warnings,omitempty" toml:"warnings,omitempty"`
	}
)

// ParseFormat converts a user-supplied format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", &UnknownFormatError{Value: Format(s)}
	}
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// Error implements the error interface.
func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (valid: text, json, toml)", e.Value)
}

// Unwrap returns ErrUnknownFormat so callers can use errors.Is for programmatic detection.
func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }

// Write encodes r to w in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, RenderText(r, DefaultStyles()))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(r)
	default:
		return &UnknownFormatError{Value: f}
	}
}
