// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if err := FormatError(nil, "libart.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("plain error becomes a document issue", func(t *testing.T) {
		t.Parallel()
		err := FormatError(errors.New("boom"), "libart.cue")
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("error should wrap ErrInvalidDocument, got: %v", err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error should be *ValidationError, got: %T", err)
		}
		if len(vErr.Issues) != 1 || vErr.Issues[0].Path != "" || vErr.Issues[0].Message != "boom" {
			t.Errorf("Issues = %+v, want one document-level issue", vErr.Issues)
		}
		if got := err.Error(); got != "libart.cue: boom" {
			t.Errorf("Error() = %q, want %q", got, "libart.cue: boom")
		}
	})
}

func TestValidationError_MultipleIssues(t *testing.T) {
	t.Parallel()

	err := &ValidationError{
		Filename: "libart.cue",
		Issues: []Issue{
			{Path: "libraries[0].name", Message: "incomplete value string"},
			{Message: "expected struct"},
		},
	}
	got := err.Error()
	for _, want := range []string{"libart.cue: validation failed:", "libraries[0].name: incomplete value string", "\n  expected struct"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"project"}, "project"},
		{"nested", []string{"install", "libdir"}, "install.libdir"},
		{"index", []string{"libraries", "0", "name"}, "libraries[0].name"},
		{"trailing index", []string{"libraries", "3"}, "libraries[3]"},
		{"leading digits are a field", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f.cue"); err != nil {
		t.Errorf("size at limit should pass, got %v", err)
	}

	err := CheckFileSize(make([]byte, 11), 10, "f.cue")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("error should wrap ErrFileTooLarge, got: %v", err)
	}
	var sizeErr *FileTooLargeError
	if !errors.As(err, &sizeErr) || sizeErr.Size != 11 || sizeErr.Limit != 10 {
		t.Errorf("FileTooLargeError = %+v, want size 11 limit 10", sizeErr)
	}
}
