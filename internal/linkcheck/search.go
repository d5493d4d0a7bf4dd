// SPDX-License-Identifier: MPL-2.0

package linkcheck

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/libart/libart/pkg/platform"
)

// ErrLibraryNotFound is the sentinel error wrapped by NotFoundError.
var ErrLibraryNotFound = errors.New("library not found")

// NotFoundError is returned when no directory holds a file the linker
// accepts for "-l<name>".
type NotFoundError struct {
	Name  string
	Dirs  []string
	Tried []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find -l%s in %s (tried %s)",
		e.Name, strings.Join(e.Dirs, ", "), strings.Join(e.Tried, ", "))
}

// Unwrap returns ErrLibraryNotFound so callers can use errors.Is for programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrLibraryNotFound }

// SearchNames returns the file names the linker tries for "-l<name>", in
// order, within one search directory.
func SearchNames(name string, kind platform.Kind) ([]string, error) {
	switch kind {
	case platform.KindPE:
		return []string{name + ".lib"}, nil
	case platform.KindPEGNU:
		return []string{
			"lib" + name + ".dll.a",
			name + ".dll.a",
			"lib" + name + ".a",
			name + ".lib",
			"lib" + name + ".dll",
			name + ".dll",
		}, nil
	case platform.KindELF:
		return []string{"lib" + name + ".so", "lib" + name + ".a"}, nil
	case platform.KindMachO:
		return []string{"lib" + name + ".dylib", "lib" + name + ".tbd", "lib" + name + ".a"}, nil
	default:
		return nil, &platform.UnsupportedPlatformError{Value: kind}
	}
}

// Search returns the first file satisfying "-l<name>". Directories are
// searched in order; within a directory SearchNames gives the order.
func Search(fsys afero.Fs, dirs []string, name string, kind platform.Kind) (string, error) {
	names, err := SearchNames(name, kind)
	if err != nil {
		return "", err
	}
	for _, dir := range dirs {
		for _, n := range names {
			p := filepath.Join(dir, n)
			ok, err := afero.Exists(fsys, p)
			if err != nil {
				return "", fmt.Errorf("search %s: %w", p, err)
			}
			if ok {
				return p, nil
			}
		}
	}
	return "", &NotFoundError{Name: name, Dirs: dirs, Tried: names}
}
