// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/libart/libart/internal/config"
	"github.com/libart/libart/internal/issue"
	"github.com/libart/libart/internal/linkcheck"
	"github.com/libart/libart/internal/report"
	"github.com/libart/libart/pkg/artifact"
	"github.com/libart/libart/pkg/buildfile"
	"github.com/libart/libart/pkg/cueutil"
	"github.com/libart/libart/pkg/platform"
	"github.com/libart/libart/pkg/version"
)

// DefaultConcurrency bounds the number of libraries resolved at once.
const DefaultConcurrency = 8

type (
	// Service runs resolve and check requests against a filesystem.
	Service struct {
		fs          afero.Fs
		namer       *artifact.Namer
		logger      *log.Logger
		concurrency int
		goos        string
	}

	// Option configures a Service.
	Option func(*Service)

	// Request describes one invocation.
	//
	// Path names a buildfile or a directory holding one. Platform, when set,
	// overrides both the buildfile and the configuration.
	Request struct {
		Path        string
		Platform    platform.Kind
		Config      config.PlatformSetting
		SkipInstall bool
	}

	// CheckResult is the outcome of a link check.
	CheckResult struct {
		Platform platform.Kind
		Dir      string
		Results  []linkcheck.Result
	}
)

// WithConcurrency sets the number of libraries resolved in parallel.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithHostOS sets the GOOS value used when the platform is "auto".
func WithHostOS(goos string) Option {
	return func(s *Service) {
		s.goos = goos
	}
}

// NewService creates a Service. A nil logger discards log output.
func NewService(fsys afero.Fs, namer *artifact.Namer, logger *log.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{
		fs:          fsys,
		namer:       namer,
		logger:      logger,
		concurrency: DefaultConcurrency,
		goos:        runtime.GOOS,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectPlatform picks the platform family: an explicit flag wins, then the
// buildfile, then the configuration, then the host operating system.
func SelectPlatform(flag, file platform.Kind, cfg config.PlatformSetting, goos string) (platform.Kind, error) {
	switch {
	case flag != "":
		return flag, flag.Validate()
	case file != "":
		return file, file.Validate()
	}
	if kind, ok := cfg.Kind(); ok {
		return kind, kind.Validate()
	}
	return platform.ForGOOS(goos)
}

// Resolve loads the buildfile named by req and resolves every library.
// Entries keep declaration order. The first failure aborts the run and no
// partial report is returned.
func (s *Service) Resolve(ctx context.Context, req Request) (report.Report, error) {
	bf, targets, kind, err := s.load(req)
	if err != nil {
		return report.Report{}, err
	}

	entries := make([]report.Entry, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.namer.Resolve(t, kind)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", t.Name, err)
			}
			entries[i] = report.Entry{Library: t, Artifacts: res, Warnings: reservedNameWarnings(res, kind)}
			for _, w := range entries[i].Warnings {
				s.logger.Warn(w, "library", t.Name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Report{}, wrapError(err, "resolve libraries", bf.FilePath)
	}

	s.logger.Debug("resolved", "libraries", len(entries), "platform", kind)
	return report.Report{Project: bf.Project, Platform: kind, Entries: entries}, nil
}

// Check stages every library of the buildfile into dir on the service
// filesystem and verifies that each shared library is found by base name.
func (s *Service) Check(ctx context.Context, req Request, dir string) (CheckResult, error) {
	bf, targets, kind, err := s.load(req)
	if err != nil {
		return CheckResult{}, err
	}
	results, err := linkcheck.New(s.fs, s.namer, s.logger).Check(ctx, dir, targets, kind)
	out := CheckResult{Platform: kind, Dir: dir, Results: results}
	if err != nil {
		return out, issue.NewErrorContext().
			WithOperation("check link names").
			WithResource(bf.FilePath).
			WithSuggestion("Make sure no two libraries produce the same file").
			WithSuggestion("Run 'libart resolve' to inspect the resolved names").
			WithIssue(issue.LinkCheckFailedId).
			Wrap(err).
			BuildError()
	}
	return out, nil
}

func (s *Service) load(req Request) (*buildfile.Buildfile, []artifact.LibraryTarget, platform.Kind, error) {
	bf, err := buildfile.Load(s.fs, req.Path)
	if err != nil {
		return nil, nil, "", wrapError(err, "load buildfile", req.Path)
	}
	targets, err := bf.Targets()
	if err != nil {
		return nil, nil, "", wrapError(err, "read libraries", bf.FilePath)
	}
	kind, err := SelectPlatform(req.Platform, bf.Platform, req.Config, s.goos)
	if err != nil {
		return nil, nil, "", wrapError(err, "select platform", bf.FilePath)
	}
	if req.SkipInstall {
		for i := range targets {
			targets[i].Install = false
		}
	}
	s.logger.Debug("loaded buildfile", "path", bf.FilePath, "libraries", len(targets), "platform", kind)
	return bf, targets, kind, nil
}

// reservedNameWarnings flags files Windows refuses to create.
func reservedNameWarnings(res artifact.ResolvedArtifacts, kind platform.Kind) []string {
	if !kind.IsWindows() {
		return nil
	}
	var warnings []string
	for _, f := range res.Files() {
		if platform.IsWindowsReservedName(f) {
			warnings = append(warnings, fmt.Sprintf("%s is a reserved device name on Windows", f))
		}
	}
	return warnings
}

// wrapError attaches the issue matching err's cause, so the CLI can point
// at 'libart explain'.
func wrapError(err error, operation, resource string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	ctx := issue.NewErrorContext().WithOperation(operation).WithResource(resource)
	switch {
	case errors.Is(err, buildfile.ErrNotFound):
		ctx.WithIssue(issue.BuildfileNotFoundId).
			WithSuggestion("Run 'libart init' to create a starter " + buildfile.DefaultFilename)
	case errors.Is(err, version.ErrInvalidVersionFormat):
		ctx.WithIssue(issue.InvalidVersionId).
			WithSuggestion("Versions are dot-separated digits, such as 1.2.3")
	case errors.Is(err, platform.ErrUnsupportedPlatform):
		ctx.WithIssue(issue.UnsupportedPlatformId).
			WithSuggestion("Pass --platform with one of: pe, pe-gnu, elf, macho")
	case errors.Is(err, cueutil.ErrInvalidDocument), errors.Is(err, buildfile.ErrInvalidLibrary):
		ctx.WithIssue(issue.BuildfileInvalidId)
	}
	return ctx.Wrap(err).BuildError()
}
