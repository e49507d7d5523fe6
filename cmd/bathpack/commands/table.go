package commands

import (
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sorenmortensen/bathpack/internal/filemap"
)

// planTable renders the resolved file map as a table: one row per copy,
// with sources shown relative to the project root.
func planTable(fm *filemap.FileMap) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"SOURCE", "FILE", "DESTINATION"})

	for _, e := range fm.Entries {
		src := e.Source
		if rel, err := filepath.Rel(fm.Root, e.Source); err == nil {
			src = rel
		}
		if e.Dir {
			src += string(filepath.Separator) + "..."
		}
		tw.AppendRow(table.Row{e.Key, src, e.Dest})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
