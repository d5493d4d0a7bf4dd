// SPDX-License-Identifier: MPL-2.0

package report

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/libart/libart/pkg/artifact"
)

// Styles holds the lipgloss styles of the text report.
type Styles struct {
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Warning lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns the styles used on terminals.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// PlainStyles returns styles without colors or padding, for tests and
// non-terminal output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Subtle: plain, Header: plain, Cell: plain, Warning: plain, Border: plain}
}

// RenderText renders one section per library: a title line, the link names,
// and a table of the files with their roles and destinations.
func RenderText(r Report, s Styles) string {
	var b strings.Builder

	header := "platform " + string(r.Platform)
	if r.Project != "" {
		header = r.Project + " · " + header
	}
	b.WriteString(s.Subtle.Render(header))
	b.WriteString("\n")

	for _, e := range r.Entries {
		b.WriteString("\n")
		b.WriteString(s.Title.Render(string(e.Library.Name)))
		b.WriteString(" ")
		b.WriteString(s.Subtle.Render("(" + string(e.Library.Kind) + ", " + e.Library.Spec.String() + ")"))
		b.WriteString("\n")

		link := "none"
		if len(e.Artifacts.LinkNameCandidates) > 0 {
			link = strings.Join(e.Artifacts.LinkNameCandidates, ", ")
		}
		b.WriteString("link: " + link + "\n")

		b.WriteString(fileTable(e, s).Render())
		b.WriteString("\n")

		for _, w := range e.Warnings {
			b.WriteString(s.Warning.Render("warning: " + w))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func fileTable(e Entry, s Styles) *table.Table {
	installed := make(map[string]string, len(e.Artifacts.InstallCopies))
	for _, c := range e.Artifacts.InstallCopies {
		installed[c.File] = path.Join(c.Dir, c.File)
	}
	target := make(map[string]string, len(e.Artifacts.Aliases))
	for _, a := range e.Artifacts.Aliases {
		target[a.Name] = a.Target
	}

	rows := [][]string{{string(artifact.RoleRuntime), e.Artifacts.RuntimeFile, "", dest(installed, e.Artifacts.RuntimeFile)}}
	if e.Artifacts.ImportLibrary != "" {
		rows = append(rows, []string{string(artifact.RoleImport), e.Artifacts.ImportLibrary, "", dest(installed, e.Artifacts.ImportLibrary)})
	}
	for _, a := range e.Artifacts.Aliases {
		rows = append(rows, []string{string(a.Role), a.Name, "→ " + target[a.Name], dest(installed, a.Name)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers("ROLE", "FILE", "LINK", "INSTALL").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		})
}

func dest(installed map[string]string, file string) string {
	if d, ok := installed[file]; ok {
		return d
	}
	return "-"
}
