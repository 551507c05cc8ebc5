package tui

import (
	"context"
	"fmt"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"ventmap/internal/config"
	"ventmap/internal/geom"
	"ventmap/internal/grid"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// cell mode pan: grid coordinate shown at the top-left of the map
	offsetX int
	offsetY int
	// overview draws the whole bbox on a braille microgrid
	overview bool

	status string
	cfg    config.Config

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	segments []geom.Line
	bbox     geom.BBox
	hasBBox  bool
	acc      grid.Accumulator
	result   grid.Result

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state, in grid coordinates
	hovering   bool
	hoverX     int
	hoverY     int
	hoverCount uint32

	// segment table
	showTable bool
	tbl       table.Model
}

func New(cfg *config.Config) Model {
	m := Model{
		helpVisible: true,
		status:      "ventmap ready",
		cfg:         *cfg,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste segments here, one \"x1,y1 -> x2,y2\" per line. Press Ctrl+S to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(segmentColumns))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a segment file at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setSegments replaces the dataset and recomputes the grid.
func (m *Model) setSegments(lines []geom.Line) error {
	res, err := grid.Compute(context.Background(), lines, m.cfg.Options())
	if err != nil {
		return err
	}
	m.segments = lines
	m.bbox, m.hasBBox = geom.Bounds(lines)
	m.acc = res.Grid
	m.result = res
	m.inspectPopup = ""
	if m.hasBBox {
		m.offsetX, m.offsetY = m.bbox.MinX, m.bbox.MinY
	}
	m.refreshTable()
	return nil
}

// recompute reruns the pipeline after a settings change.
func (m *Model) recompute() {
	if m.segments == nil {
		return
	}
	if err := m.setSegments(m.segments); err != nil {
		m.status = "compute error: " + err.Error()
		return
	}
	m.status = m.summary()
}

func (m Model) summary() string {
	mode := "all lines"
	if m.cfg.StraightOnly {
		mode = "straight only"
	}
	return fmt.Sprintf("%s  overlaps=%d  segments=%d skipped=%d", mode, m.result.Overlaps, m.result.Applied, m.result.Skipped)
}
