// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the libart command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "libart",
		Short: "Resolve shared-library artifact names for every platform",
		Long: TitleStyle.Render("libart") + SubtitleStyle.Render(" - shared-library artifact naming and installation") + `

libart reads a libart.cue buildfile that declares libraries with an
optional version and soversion, and computes for each platform family
(pe, pe-gnu, elf, macho) the runtime file, import library, linker
search names, symbolic links and install copies.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a buildfile with: libart init
  2. Resolve it for the host with: libart resolve
  3. Resolve it for Windows with: libart resolve --platform pe

` + SubtitleStyle.Render("Examples:") + `
  libart resolve --format json     Print the resolved artifacts as JSON
  libart check --platform elf      Verify -l<name> finds every library
  libart explain invalid-version   Explain an error message
  libart config show               Show current configuration`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.initConfig(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/libart/config.cue)")

	rootCmd.AddCommand(
		newResolveCommand(app),
		newCheckCommand(app),
		newInitCommand(app),
		newConfigCommand(app),
		newExplainCommand(app),
	)

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the command tree. It is called
// by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
