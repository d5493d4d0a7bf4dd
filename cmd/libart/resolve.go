// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/libart/libart/internal/app/resolve"
	"github.com/libart/libart/internal/issue"
	"github.com/libart/libart/internal/report"
	"github.com/libart/libart/pkg/platform"
)

// resolveOptions holds the flag values of resolve and check.
type resolveOptions struct {
	path      string
	platform  string
	format    string
	noInstall bool
}

// newResolveCommand creates the `libart resolve` command.
func newResolveCommand(app *App) *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Print the artifacts of every library for a platform",
		Long: `Print the artifacts of every library declared in a buildfile.

The path names a libart.cue file or a directory holding one; it defaults
to the current directory. The platform comes from --platform, then the
buildfile, then the configuration, then the host operating system.

Examples:
  libart resolve                          Resolve ./libart.cue for the host
  libart resolve --platform pe-gnu        Resolve for MinGW
  libart resolve build/ --format toml     Print a TOML report
  libart resolve --no-install             Leave out install copies`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.path = pathArg(args)
			return runResolve(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.platform, "platform", "p", "", "platform family (pe, pe-gnu, elf, macho)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (text, json, toml); defaults to output_format from config")
	cmd.Flags().BoolVar(&opts.noInstall, "no-install", false, "resolve without install copies")

	return cmd
}

func runResolve(cmd *cobra.Command, app *App, opts resolveOptions) error {
	cfg := app.settings()

	kind, err := parsePlatformFlag(opts.platform)
	if err != nil {
		return app.fail(cmd, err)
	}

	name := opts.format
	if name == "" {
		name = cfg.OutputFormat.String()
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return app.fail(cmd, issue.NewErrorContext().
			WithOperation("select output format").
			WithSuggestion("Use one of: text, json, toml").
			WithIssue(issue.UnknownFormatId).
			Wrap(err).
			BuildError())
	}

	svc, err := app.newService(app.FS)
	if err != nil {
		return app.fail(cmd, err)
	}
	rep, err := svc.Resolve(cmd.Context(), resolve.Request{
		Path:        opts.path,
		Platform:    kind,
		Config:      cfg.Platform,
		SkipInstall: opts.noInstall,
	})
	if err != nil {
		return app.fail(cmd, err)
	}
	return report.Write(cmd.OutOrStdout(), rep, format)
}

// parsePlatformFlag converts --platform; empty means unset.
func parsePlatformFlag(value string) (platform.Kind, error) {
	if value == "" {
		return "", nil
	}
	kind, err := platform.ParseKind(value)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("select platform").
			WithResource("--platform").
			WithSuggestion("Use one of: pe, pe-gnu, elf, macho").
			WithIssue(issue.UnsupportedPlatformId).
			Wrap(err).
			BuildError()
	}
	return kind, nil
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
