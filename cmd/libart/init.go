// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/libart/libart/pkg/buildfile"
)

// newInitCommand creates the `libart init` command.
func newInitCommand(app *App) *cobra.Command {
	var (
		force   bool
		project string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter libart.cue",
		Long: `Create a starter buildfile declaring four sample libraries.

The samples cover every combination of version and soversion, so
'libart resolve' on the new file shows each naming rule.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, app, pathArg(args), project, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing buildfile")
	cmd.Flags().StringVar(&project, "project", "", "project name written to the buildfile")

	return cmd
}

func runInit(cmd *cobra.Command, app *App, path, project string, force bool) error {
	if isDir, err := afero.IsDir(app.FS, path); err == nil && isDir {
		path = filepath.Join(path, buildfile.DefaultFilename)
	}

	if exists, _ := afero.Exists(app.FS, path); exists && !force {
		return app.fail(cmd, fmt.Errorf("file '%s' already exists. Use --force to overwrite", path))
	}
	if err := afero.WriteFile(app.FS, path, buildfile.Generate(project), 0o644); err != nil {
		return app.fail(cmd, fmt.Errorf("failed to write file: %w", err))
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Created %s\n", SuccessStyle.Render("✓"), path)
	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(w, "  1. Edit the buildfile to declare your libraries")
	fmt.Fprintln(w, "  2. Run 'libart resolve' to see the file names")
	fmt.Fprintln(w, "  3. Run 'libart check' to verify the linker finds them")
	return nil
}
