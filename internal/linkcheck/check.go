// SPDX-License-Identifier: MPL-2.0

package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/syntax"

	"github.com/libart/libart/pkg/artifact"
	"github.com/libart/libart/pkg/platform"
)

// ErrFileCollision is returned when two libraries resolve to the same file.
var ErrFileCollision = errors.New("file name collision")

type (
	// Checker stages libraries and verifies their link names.
	Checker struct {
		fs     afero.Fs
		namer  *artifact.Namer
		logger *log.Logger
	}

	// Result is the outcome for one library.
	Result struct {
		Library artifact.BaseName
		// Skipped is set for modules, which are never linked against.
		Skipped bool
		// Found is the file the linker search selected.
		Found string
		// Command is the shell-quoted linker arguments that were emulated.
		Command string
		// Err is set when the search failed.
		Err error
	}
)

// New creates a Checker. A nil logger discards log output.
func New(fsys afero.Fs, namer *artifact.Namer, logger *log.Logger) *Checker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Checker{fs: fsys, namer: namer, logger: logger}
}

// Check stages every target into dir, then searches dir for each shared
// library by base name alone. Modules are staged but skipped by the search.
//
// Results are in target order. The error joins every failed search; staging
// or resolution failures abort the check without results.
func (c *Checker) Check(ctx context.Context, dir string, targets []artifact.LibraryTarget, kind platform.Kind) ([]Result, error) {
	owners := make(map[string]artifact.BaseName)
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := c.namer.Resolve(t, kind)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", t.Name, err)
		}
		for _, f := range res.Files() {
			if owner, dup := owners[f]; dup {
				return nil, fmt.Errorf("%w: %s is produced by both %s and %s", ErrFileCollision, f, owner, t.Name)
			}
			owners[f] = t.Name
		}
		staged, err := Stage(c.fs, dir, res)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("staged", "library", t.Name, "files", len(staged))
	}

	results := make([]Result, 0, len(targets))
	var errs []error
	for _, t := range targets {
		if t.Kind == artifact.KindModule {
			c.logger.Debug("skipping module", "library", t.Name)
			results = append(results, Result{Library: t.Name, Skipped: true})
			continue
		}
		r := Result{Library: t.Name, Command: LinkCommand(dir, string(t.Name))}
		r.Found, r.Err = Search(c.fs, []string{dir}, string(t.Name), kind)
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, r.Err))
			c.logger.Warn("link check failed", "library", t.Name, "err", r.Err)
		} else {
			c.logger.Debug("link check passed", "library", t.Name, "found", r.Found)
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

// LinkCommand renders the emulated linker arguments for a shell. Arguments
// that cannot be quoted are kept verbatim.
func LinkCommand(dir, name string) string {
	args := []string{"-L" + dir, "-l" + name}
	for i, a := range args {
		if q, err := syntax.Quote(a, syntax.LangBash); err == nil {
			args[i] = q
		}
	}
	return strings.Join(args, " ")
}
