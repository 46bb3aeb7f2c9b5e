package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 1)
)

func renderTable(rows []conversion) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "FORMULA", "INCHI", "KEY", "NOTES")
	failed := make(map[int]bool)
	for i, r := range rows {
		notes := strings.Join(r.Warnings, "; ")
		if r.Error != "" {
			notes = r.Error
			failed[i] = true
		}
		t.Row(r.File, r.Formula, r.InChI, r.Key, notes)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case failed[row]:
			return errorStyle
		default:
			return cellStyle
		}
	})
	return t.String()
}
