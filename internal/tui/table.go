package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

var segmentColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "segment", Width: 20},
	{Title: "orientation", Width: 12},
	{Title: "cells", Width: 6},
	{Title: "applied", Width: 8},
}

// refreshTable rebuilds the segment table rows from the current dataset.
func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.segments))
	for i, l := range m.segments {
		applied := "yes"
		if m.cfg.StraightOnly && !l.Straight() {
			applied = "no"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			l.String(),
			l.Orientation().String(),
			fmt.Sprintf("%d", l.Len()),
			applied,
		})
	}
	m.tbl.SetRows(rows)
}
