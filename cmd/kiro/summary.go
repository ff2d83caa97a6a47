package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"kiro/internal/organizer"
)

// renderSummary renders the end-of-scan counters as a small table.
func renderSummary(stats organizer.Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Moved", "Errors"})
	tw.AppendRow(table.Row{strconv.Itoa(stats.Moved), strconv.Itoa(stats.Errors)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}
