package tui

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventmap/internal/config"
	"ventmap/internal/geom"
)

const canonical = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2`

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func key(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	out, ok := nm.(Model)
	require.True(t, ok)
	return out
}

func loaded(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Dimension = 10
	m := New(cfg)
	lines, err := geom.ParseSegments(canonical)
	require.NoError(t, err)
	require.NoError(t, m.setSegments(lines))
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	assert.Equal(t, uint8(0x81), b.m[0][0])
	assert.Equal(t, rune(0x2881), b.glyph(0, 0))
	assert.Equal(t, ' ', b.glyph(1, 0))
}

func TestBrailleDrawLine(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLineMicro(0, 0, 3, 0)
	assert.Equal(t, uint8(0x09), b.m[0][0])
	assert.Equal(t, uint8(0x09), b.m[0][1])
}

func TestRenderCells(t *testing.T) {
	m := loaded(t)
	got := strings.Split(stripANSI(m.renderCells(10, 10)), "\n")
	want := []string{
		"1.1....11.",
		".111...2..",
		"..2.1.111.",
		"...1.2.2..",
		".112313211",
		"...1.2....",
		"..1...1...",
		".1.....1..",
		"1.......1.",
		"222111....",
	}
	assert.Equal(t, want, got)

	// beyond the grid edge renders blank
	m.offsetX = 8
	row := strings.Split(stripANSI(m.renderCells(4, 1)), "\n")[0]
	assert.Equal(t, "1.  ", row)
}

func TestHeatStyleScalesToPeak(t *testing.T) {
	tests := []struct {
		count, peak uint32
		want        *lipgloss.Style
	}{
		{0, 5, &dimStyle},
		{1, 5, &coverStyle},
		{2, 2, &heat[2]},
		{2, 3, &heat[1]},
		{3, 3, &heat[2]},
		{2, 40, &heat[0]},
		{14, 40, &heat[0]},
		{20, 40, &heat[1]},
		{40, 40, &heat[2]},
		{9, 4, &heat[2]},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, heatStyle(tt.count, tt.peak), "count %d peak %d", tt.count, tt.peak)
	}
}

func TestToggleStraight(t *testing.T) {
	m := loaded(t)
	assert.Equal(t, 12, m.result.Overlaps)

	m = update(t, m, key("s"))
	assert.True(t, m.cfg.StraightOnly)
	assert.Equal(t, 5, m.result.Overlaps)
	assert.Contains(t, m.status, "straight only")
	assert.Contains(t, m.status, "overlaps=5")
	assert.Equal(t, "no", m.tbl.Rows()[1][4])

	m = update(t, m, key("s"))
	assert.Equal(t, 12, m.result.Overlaps)
}

func TestPaste(t *testing.T) {
	cfg := config.Default()
	m := update(t, New(cfg), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, key("p"))
	require.True(t, m.pasteMode)

	m.ta.SetValue("1,1 -> 1,3\n0,2 -> 4,2\n")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.pasteMode)
	assert.Equal(t, 1, m.result.Overlaps)
	assert.Len(t, m.segments, 2)

	m = update(t, m, key("p"))
	m.ta.SetValue("1,1 -> 2,3")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "parse error")
	assert.Len(t, m.segments, 2)
}

func TestOutOfBoundsKeepsData(t *testing.T) {
	m := loaded(t)
	err := m.setSegments([]geom.Line{{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 0, Y: 10}}})
	require.Error(t, err)
	assert.Len(t, m.segments, 10)
}

func TestHoverAndInspect(t *testing.T) {
	m := loaded(t)
	m = update(t, m, tea.MouseMsg{X: 4, Y: 1 + 4})
	require.True(t, m.hovering)
	assert.Equal(t, 4, m.hoverX)
	assert.Equal(t, 4, m.hoverY)
	assert.Equal(t, uint32(3), m.hoverCount)

	m = update(t, m, key("i"))
	assert.Contains(t, m.inspectPopup, "count: 3")
	assert.Contains(t, m.inspectPopup, "0,0 -> 8,8 (diagonal)")
	assert.Contains(t, stripANSI(m.View()), "count: 3")

	m = update(t, m, key("i"))
	assert.Empty(t, m.inspectPopup)

	// outside the map canvas
	m = update(t, m, tea.MouseMsg{X: 4, Y: 0})
	assert.False(t, m.hovering)
}

func TestOverview(t *testing.T) {
	m := loaded(t)
	m = update(t, m, key("o"))
	require.True(t, m.overview)
	out := stripANSI(m.renderOverview(5, 3))
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.NotEqual(t, strings.Repeat(" ", 5), strings.Split(out, "\n")[0])

	p, ok := m.cellToGrid(0, 0, 5, 3)
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, p)
	// 2 dots per column across 9 steps of x, 4 per row across 9 steps of y
	p, ok = m.cellToGrid(4, 2, 5, 3)
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 8, Y: 6}, p)
}

func TestViewLayout(t *testing.T) {
	m := loaded(t)
	out := stripANSI(m.View())
	assert.Contains(t, out, "ventmap")
	assert.Contains(t, out, "quit")

	m = update(t, m, key("t"))
	require.True(t, m.showTable)
	assert.Contains(t, stripANSI(m.View()), "orientation")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showTable)
}
