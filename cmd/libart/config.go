// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libart/libart/internal/config"
)

// newConfigCommand creates the `libart config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage libart configuration",
		Long: `Manage libart configuration.

Configuration is stored in:
  - Linux: ~/.config/libart/config.cue
  - macOS: ~/Library/Application Support/libart/config.cue
  - Windows: %APPDATA%\libart\config.cue

Every key can be overridden with a LIBART_ environment variable,
for example LIBART_PLATFORM=elf or LIBART_INSTALL_LIBDIR=lib64.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, app, force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, exists, err := config.ConfigPath(app.loadOptions())
			if err != nil {
				return app.fail(cmd, err)
			}
			state := SuccessStyle.Render("(exists)")
			if !exists {
				state = SubtitleStyle.Render("(not created)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s %s\n", path, state)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
	if err != nil {
		return app.fail(cmd, err)
	}

	w := cmd.OutOrStdout()
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, exists, pathErr := config.ConfigPath(app.loadOptions())
	if pathErr == nil && exists {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("platform"), valueStyle.Render(cfg.Platform.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output_format"), valueStyle.Render(cfg.OutputFormat.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("install"))
	fmt.Fprintf(w, "  bindir: %s\n", valueStyle.Render(cfg.Install.BinDir))
	fmt.Fprintf(w, "  libdir: %s\n", valueStyle.Render(cfg.Install.LibDir))
	fmt.Fprintf(w, "  moduledir: %s\n", valueStyle.Render(cfg.Install.ModuleDir))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(cmd *cobra.Command, app *App, force bool) error {
	path, err := config.CreateDefaultConfig(app.loadOptions(), force)
	if err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return app.fail(cmd, fmt.Errorf("%w; use --force to overwrite", err))
		}
		return app.fail(cmd, fmt.Errorf("failed to create config: %w", err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
