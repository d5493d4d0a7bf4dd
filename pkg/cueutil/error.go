// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrInvalidDocument is the sentinel error wrapped by ValidationError.
	ErrInvalidDocument = errors.New("invalid CUE document")
	// ErrFileTooLarge is the sentinel error wrapped by FileTooLargeError.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// Issue is one schema violation.
	Issue struct {
		// Path is the JSON-style location of the value, e.g. "libraries[1].version".
		// Empty for document-level problems.
		Path string
		// Message is the CUE diagnostic without the path prefix.
		Message string
	}

	// ValidationError reports every schema violation found in one file.
	ValidationError struct {
		Filename string
		Issues   []Issue
	}

	// FileTooLargeError is returned when a document exceeds the size limit.
	FileTooLargeError struct {
		Filename string
		Size     int64
		Limit    int64
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Path == "" {
			lines = append(lines, is.Message)
			continue
		}
		lines = append(lines, is.Path+": "+is.Message)
	}
	if len(lines) == 1 {
		return e.Filename + ": " + lines[0]
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.Filename, strings.Join(lines, "\n  "))
}

// Unwrap returns ErrInvalidDocument so callers can use errors.Is for programmatic detection.
func (e *ValidationError) Unwrap() error { return ErrInvalidDocument }

// Error implements the error interface.
func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.Filename, e.Size, e.Limit)
}

// Unwrap returns ErrFileTooLarge so callers can use errors.Is for programmatic detection.
func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

// FormatError converts a CUE error into a *ValidationError with one Issue per
// CUE diagnostic. Errors that carry no CUE diagnostics become a single
// document-level Issue. A nil error yields nil.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return &ValidationError{Filename: filename, Issues: []Issue{{Message: err.Error()}}}
	}

	issues := make([]Issue, 0, len(list))
	for _, e := range list {
		path := formatPath(e.Path())
		msg := e.Error()
		if path != "" {
			// CUE may repeat the raw selector path at the start of the message.
			raw := strings.Join(e.Path(), ".")
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, raw), ":"))
		}
		issues = append(issues, Issue{Path: path, Message: msg})
	}
	return &ValidationError{Filename: filename, Issues: issues}
}

// formatPath renders a CUE selector path in JSON-path notation:
// ["libraries", "0", "name"] becomes "libraries[0].name".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns a *FileTooLargeError when data exceeds maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return &FileTooLargeError{Filename: filename, Size: size, Limit: maxSize}
	}
	return nil
}
