// SPDX-License-Identifier: MPL-2.0

package linkcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/libart/libart/pkg/artifact"
)

// Stage materializes the files of res in dir: placeholder contents for the
// runtime file and import library, then the aliases in order. Aliases are
// symbolic links where the filesystem supports them and copies of their
// target otherwise. It returns the staged paths.
func Stage(fsys afero.Fs, dir string, res artifact.ResolvedArtifacts) ([]string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	var staged []string
	for _, name := range []string{res.RuntimeFile, res.ImportLibrary} {
		if name == "" {
			continue
		}
		p := filepath.Join(dir, name)
		if err := afero.WriteFile(fsys, p, placeholder(name), 0o644); err != nil {
			return staged, fmt.Errorf("stage %s: %w", name, err)
		}
		staged = append(staged, p)
	}

	for _, a := range res.Aliases {
		p := filepath.Join(dir, a.Name)
		if err := link(fsys, dir, a); err != nil {
			return staged, fmt.Errorf("stage %s -> %s: %w", a.Name, a.Target, err)
		}
		staged = append(staged, p)
	}
	return staged, nil
}

func link(fsys afero.Fs, dir string, a artifact.Alias) error {
	p := filepath.Join(dir, a.Name)
	if err := fsys.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if l, ok := fsys.(afero.Linker); ok {
		err := l.SymlinkIfPossible(a.Target, p)
		if err == nil || !errors.Is(err, afero.ErrNoSymlink) {
			return err
		}
	}
	data, err := afero.ReadFile(fsys, filepath.Join(dir, a.Target))
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, p, data, 0o644)
}

func placeholder(name string) []byte {
	return []byte("libart staged " + name + "\n")
}
