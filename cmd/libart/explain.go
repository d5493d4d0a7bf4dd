// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/libart/libart/internal/config"
	"github.com/libart/libart/internal/issue"
)

// newExplainCommand creates the `libart explain` command.
func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [issue]",
		Short: "Explain an error and how to fix it",
		Long: `Show the help page for an issue.

Errors that libart reports end with "Run 'libart explain <issue>'".
Without an argument the list of pages is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), issueTable().Render())
				return nil
			}
			page := issue.Lookup(args[0])
			if page == nil {
				return app.fail(cmd, fmt.Errorf("unknown issue %q; run 'libart explain' for the list", args[0]))
			}
			rendered, err := page.Render(glamourStyle(app.settings().UI.ColorScheme))
			if err != nil {
				return app.fail(cmd, fmt.Errorf("failed to render issue page: %w", err))
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func issueTable() *table.Table {
	rows := make([][]string, 0, len(issue.Values()))
	for _, is := range issue.Values() {
		rows = append(rows, []string{strconv.Itoa(int(is.Id())), is.Slug(), is.Title()})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		Headers("ID", "ISSUE", "TITLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TitleStyle.Padding(0, 1)
			case col == 1:
				return CmdStyle.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle(scheme config.ColorScheme) string {
	if scheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
