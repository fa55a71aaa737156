// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// titleWidth is the widest title shown in the study table.
const titleWidth = 70

// renderStudyTable lays out records as a numbered table of title, year, and
// category in dataset order. Undated studies show "n.d.".
func renderStudyTable(records []types.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Year", "Category"})

	for i, r := range records {
		year := r.Year
		if year == "" {
			year = "n.d."
		}
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), truncate(r.Title, titleWidth), year, r.Category})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// truncate shortens s to at most n characters, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
