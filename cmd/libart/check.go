// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/libart/libart/internal/app/resolve"
	"github.com/libart/libart/internal/linkcheck"
)

// memoryStageDir is where check stages files when --dir is not given.
var memoryStageDir = filepath.FromSlash("/libart-stage")

// newCheckCommand creates the `libart check` command.
func newCheckCommand(app *App) *cobra.Command {
	var (
		opts resolveOptions
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Verify that -l<name> finds every shared library",
		Long: `Stage the files of every library and emulate the linker search.

Each library's runtime file, import library and symbolic links are
written to a staging directory; the command then checks that
'-L<dir> -l<name>' finds every shared library by its base name.
Modules are staged but never linked against.

Without --dir the staging directory lives in memory and nothing is
written to disk.

Examples:
  libart check                         Check ./libart.cue for the host
  libart check --platform macho        Check the Mach-O names
  libart check --dir ./stage           Stage on disk and keep the files`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.path = pathArg(args)
			return runCheck(cmd, app, opts, dir)
		},
	}

	cmd.Flags().StringVarP(&opts.platform, "platform", "p", "", "platform family (pe, pe-gnu, elf, macho)")
	cmd.Flags().StringVar(&dir, "dir", "", "stage files in this directory instead of memory")

	return cmd
}

func runCheck(cmd *cobra.Command, app *App, opts resolveOptions, dir string) error {
	kind, err := parsePlatformFlag(opts.platform)
	if err != nil {
		return app.fail(cmd, err)
	}

	// Reads fall through to the real filesystem; writes stay in memory.
	fsys := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(app.FS), afero.NewMemMapFs())
	stageDir := memoryStageDir
	if dir != "" {
		fsys = app.FS
		stageDir = dir
	}

	svc, err := app.newService(fsys)
	if err != nil {
		return app.fail(cmd, err)
	}
	out, err := svc.Check(cmd.Context(), resolve.Request{
		Path:     opts.path,
		Platform: kind,
		Config:   app.settings().Platform,
	}, stageDir)

	w := cmd.OutOrStdout()
	if len(out.Results) > 0 {
		fmt.Fprintf(w, "%s %s\n\n", TitleStyle.Render("Link check"), SubtitleStyle.Render("· platform "+out.Platform.String()))
		for _, r := range out.Results {
			fmt.Fprintln(w, renderResult(r))
		}
	}
	if err != nil {
		return app.fail(cmd, err)
	}
	fmt.Fprintf(w, "\n%s every shared library links by name\n", SuccessStyle.Render("✓"))
	return nil
}

func renderResult(r linkcheck.Result) string {
	switch {
	case r.Skipped:
		return fmt.Sprintf("  %s %s %s", SubtitleStyle.Render("-"), r.Library, SubtitleStyle.Render("(module, not linked)"))
	case r.Err != nil:
		return fmt.Sprintf("  %s %s  %s", ErrorStyle.Render("✗"), CmdStyle.Render(r.Command), r.Err)
	default:
		return fmt.Sprintf("  %s %s  → %s", SuccessStyle.Render("✓"), CmdStyle.Render(r.Command), filepath.Base(r.Found))
	}
}
