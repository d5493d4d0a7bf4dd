// SPDX-License-Identifier: MPL-2.0

package platform

import "fmt"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ForGOOS maps a toolchain probe result in runtime.GOOS form to the native
// binary-format family of that OS. Windows maps to the MSVC-style PE
// convention; callers targeting MinGW must select KindPEGNU explicitly.
func ForGOOS(goos string) (Kind, error) {
	switch goos {
	case Windows:
		return KindPE, nil
	case Darwin, "ios":
		return KindMachO, nil
	case Linux, "android", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos", "aix", "hurd":
		return KindELF, nil
	default:
		return "", fmt.Errorf("no binary format known for GOOS %q: %w", goos, ErrUnsupportedPlatform)
	}
}
