package quiztui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"learnquiz/internal/question"
)

// newStatsTable builds the per-source-file statistics table.
func newStatsTable(stats question.Stats, noColor bool) table.Model {
	rows := []table.Row{
		{"Total", strconv.Itoa(stats.Total)},
		{"Multiple choice", strconv.Itoa(stats.Choice)},
		{"Open", strconv.Itoa(stats.Open)},
	}
	for _, source := range stats.BySource {
		rows = append(rows, table.Row{source.File, strconv.Itoa(source.Count)})
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Source", Width: 40},
			{Title: "Questions", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(tableStyles(noColor))
	return t
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}
