package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// VaultRow is one line of the vault listing.
type VaultRow struct {
	Name    string
	Path    string
	Default bool
}

// RenderVaultTable renders registered vaults with a marker on the default.
func RenderVaultTable(rows []VaultRow) string {
	if len(rows) == 0 {
		return ""
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		marker := ""
		if r.Default {
			marker = "*"
		}
		cells[i] = []string{marker, r.Name, r.Path}
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(Muted).
		Headers("", "NAME", "PATH").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			if col < 2 {
				style = style.PaddingRight(2)
			}
			switch {
			case row == table.HeaderRow:
				return style.Inherit(Muted)
			case col == 1:
				return style.Inherit(Accent)
			}
			return style
		}).
		Rows(cells...)

	return tbl.Render()
}
