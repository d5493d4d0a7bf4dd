// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/libart/libart/internal/app/resolve"
	"github.com/libart/libart/internal/config"
	"github.com/libart/libart/internal/issue"
	"github.com/libart/libart/pkg/artifact"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every command constructor receives the App and
	// delegates through it.
	App struct {
		Config ConfigProvider
		FS     afero.Fs
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger

		// Persistent flag values.
		verbose    bool
		configPath string

		cfg *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		FS     afero.Fs
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}

	return &App{
		Config: deps.Config,
		FS:     deps.FS,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: "libart",
			Level:  log.WarnLevel,
		}),
	}
}

// loadOptions returns the config options selected by the --config flag.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configPath}
}

// initConfig loads the configuration once per invocation. A broken config
// file is reported as a warning and the defaults are used instead.
func (a *App) initConfig(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	// Apply verbose from config if not set via flag
	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
}

// settings returns the loaded configuration, or the defaults when the
// command ran without the root pre-run hook.
func (a *App) settings() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

// newService builds a resolve.Service over fsys using the configured layout.
func (a *App) newService(fsys afero.Fs) (*resolve.Service, error) {
	namer, err := artifact.NewNamer(artifact.WithLayout(a.settings().Install.Layout()))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("apply install layout").
			WithSuggestion("Check install.bindir, install.libdir and install.moduledir in your config").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return resolve.NewService(fsys, namer, a.logger), nil
}

// fail renders err on stderr and returns an ExitError so fang does not
// print it a second time.
func (a *App) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1, Err: err}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their suggestions, and in verbose mode the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
