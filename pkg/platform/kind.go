// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// KindPE is the Windows PE convention with MSVC-style naming:
	// a runtime DLL plus a separate "NAME.lib" import library.
	KindPE Kind = "pe"
	// KindPEGNU is the Windows PE convention as produced by GNU toolchains
	// (MinGW): "libNAME.dll" plus a "libNAME.dll.a" import library.
	KindPEGNU Kind = "pe-gnu"
	// KindELF is the ELF shared-object convention ("libNAME.so" chains).
	KindELF Kind = "elf"
	// KindMachO is the Mach-O dynamic-library convention ("libNAME.dylib").
	KindMachO Kind = "macho"
)

// ErrUnsupportedPlatform is the sentinel error wrapped by UnsupportedPlatformError.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

type (
	// Kind identifies a binary-format family. The zero value is invalid.
	Kind string

	// UnsupportedPlatformError is returned when a Kind is not one of the
	// known variants. It wraps ErrUnsupportedPlatform for errors.Is().
	UnsupportedPlatformError struct {
		Value Kind
	}
)

// aliases maps accepted spellings to their canonical Kind.
var aliases = map[string]Kind{
	"pe":      KindPE,
	"msvc":    KindPE,
	"windows": KindPE,
	"win32":   KindPE,
	"pe-gnu":  KindPEGNU,
	"mingw":   KindPEGNU,
	"mingw32": KindPEGNU,
	"elf":     KindELF,
	"linux":   KindELF,
	"macho":   KindMachO,
	"mach-o":  KindMachO,
	"darwin":  KindMachO,
	"macos":   KindMachO,
}

// Kinds returns every known Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPE, KindPEGNU, KindELF, KindMachO}
}

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Validate returns an error if the Kind is not a known variant.
func (k Kind) Validate() error {
	switch k {
	case KindPE, KindPEGNU, KindELF, KindMachO:
		return nil
	default:
		return &UnsupportedPlatformError{Value: k}
	}
}

// IsWindows reports whether the Kind produces PE binaries, whose file names
// are subject to Windows naming rules.
func (k Kind) IsWindows() bool {
	return k == KindPE || k == KindPEGNU
}

// ParseKind converts a user-supplied platform name into a Kind.
// Matching is case-insensitive and accepts common aliases ("windows", "mingw",
// "linux", "darwin").
func ParseKind(s string) (Kind, error) {
	if k, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", &UnsupportedPlatformError{Value: Kind(s)}
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform %q (valid: pe, pe-gnu, elf, macho)", e.Value)
}

// Unwrap returns ErrUnsupportedPlatform so callers can use errors.Is for programmatic detection.
func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }
