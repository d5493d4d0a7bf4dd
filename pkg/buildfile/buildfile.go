// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/libart/libart/pkg/artifact"
	"github.com/libart/libart/pkg/cueutil"
	"github.com/libart/libart/pkg/platform"
	"github.com/libart/libart/pkg/version"
)

// DefaultFilename is the buildfile name looked up in a project directory.
const DefaultFilename = "libart.cue"

var (
	//go:embed buildfile_schema.cue
	schema []byte

	// ErrNotFound is returned by Load when no buildfile exists at the path.
	ErrNotFound = errors.New("buildfile not found")
	// ErrInvalidLibrary is the sentinel error wrapped by InvalidLibraryError.
	ErrInvalidLibrary = errors.New("invalid library declaration")
	// ErrDuplicateLibrary is returned when two libraries share a name.
	ErrDuplicateLibrary = errors.New("duplicate library name")
)

type (
	// Buildfile is a parsed libart.cue.
	Buildfile struct {
		Project   string        `json:"project,omitempty"`
		Platform  platform.Kind `json:"platform,omitempty"`
		Libraries []Library     `json:"libraries"`

		// FilePath is where the buildfile was read from, empty for in-memory input.
		FilePath string `json:"-"`
	}

	// Library is one declaration as written. SoVersion holds an int64 or a
	// string, or nil when omitted.
	Library struct {
		Name       string        `json:"name"`
		Version    string        `json:"version,omitempty"`
		SoVersion  any           `json:"soversion,omitempty"`
		Kind       artifact.Kind `json:"kind"`
		Install    bool          `json:"install"`
		InstallDir string        `json:"install_dir,omitempty"`
	}

	// InvalidLibraryError reports a declaration that cannot become a target.
	InvalidLibraryError struct {
		Index int
		Name  string
		Err   error
	}
)

// Error implements the error interface.
func (e *InvalidLibraryError) Error() string {
	return fmt.Sprintf("libraries[%d] (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the sentinel and the cause, so errors.Is matches both
// ErrInvalidLibrary and, for example, version.ErrInvalidVersionFormat.
func (e *InvalidLibraryError) Unwrap() []error {
	return []error{ErrInvalidLibrary, e.Err}
}

// Parse validates data against the buildfile schema and decodes it.
func Parse(data []byte, filename string) (*Buildfile, error) {
	res, err := cueutil.ParseAndDecode[Buildfile](schema, data, "#Buildfile", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	res.Value.FilePath = filename
	return res.Value, nil
}

// Load reads and parses the buildfile at path. When path names a directory
// DefaultFilename inside it is read.
func Load(fsys afero.Fs, path string) (*Buildfile, error) {
	if isDir, err := afero.IsDir(fsys, path); err == nil && isDir {
		path = filepath.Join(path, DefaultFilename)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read buildfile: %w", err)
	}
	return Parse(data, path)
}

// Targets normalizes every declaration into a LibraryTarget, in declaration
// order. Any invalid declaration fails the whole call; every problem found is
// reported in the joined error.
func (b *Buildfile) Targets() ([]artifact.LibraryTarget, error) {
	targets := make([]artifact.LibraryTarget, 0, len(b.Libraries))
	seen := make(map[string]int, len(b.Libraries))
	var errs []error
	for i, lib := range b.Libraries {
		if first, dup := seen[lib.Name]; dup {
			errs = append(errs, &InvalidLibraryError{
				Index: i,
				Name:  lib.Name,
				Err:   fmt.Errorf("%w: also declared at libraries[%d]", ErrDuplicateLibrary, first),
			})
			continue
		}
		seen[lib.Name] = i

		target, err := lib.target()
		if err != nil {
			errs = append(errs, &InvalidLibraryError{Index: i, Name: lib.Name, Err: err})
			continue
		}
		targets = append(targets, target)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return targets, nil
}

func (l Library) target() (artifact.LibraryTarget, error) {
	token, err := version.TokenOf(l.SoVersion)
	if err != nil {
		return artifact.LibraryTarget{}, err
	}
	spec, err := version.Normalize(version.Version(l.Version), token)
	if err != nil {
		return artifact.LibraryTarget{}, err
	}
	kind := l.Kind
	if kind == "" {
		kind = artifact.KindShared
	}
	t := artifact.LibraryTarget{
		Name:       artifact.BaseName(l.Name),
		Spec:       spec,
		Kind:       kind,
		Install:    l.Install,
		InstallDir: l.InstallDir,
	}
	if err := t.Validate(); err != nil {
		return artifact.LibraryTarget{}, err
	}
	return t, nil
}
