package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ventmap/internal/geom"
	"ventmap/internal/grid"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// mapRect is the map canvas position and size in terminal cells.
type mapRect struct {
	x, y int
	w, h int
}

// layout computes the map canvas. View and the mouse handler must agree on it.
func (m Model) layout() mapRect {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	r := mapRect{y: headerHeight, w: contentWidth - 1, h: contentHeight}
	if m.showSidebar {
		r.x = sidebarWidth + 1
		r.w = contentWidth - sidebarWidth - 1
	}
	r.w = max(10, r.w)
	return r
}

// styledRow renders cells, merging neighbours that share a style.
type styledRow struct {
	b     strings.Builder
	run   []rune
	style *lipgloss.Style
}

func (r *styledRow) put(ch rune, st *lipgloss.Style) {
	if st != r.style {
		r.flush()
		r.style = st
	}
	r.run = append(r.run, ch)
}

func (r *styledRow) flush() {
	if len(r.run) == 0 {
		return
	}
	if r.style == nil {
		r.b.WriteString(string(r.run))
	} else {
		r.b.WriteString(r.style.Render(string(r.run)))
	}
	r.run = r.run[:0]
}

func (r *styledRow) String() string {
	r.flush()
	return r.b.String()
}

func (m Model) renderMap(w, h int) string {
	if m.acc == nil {
		return dimStyle.Render("no segments loaded: Tab to browse files, p to paste")
	}
	if m.overview {
		return m.renderOverview(w, h)
	}
	return m.renderCells(w, h)
}

// renderCells draws one terminal cell per grid cell starting at the pan offset.
func (m Model) renderCells(w, h int) string {
	dim := m.acc.Dimension()
	peak := m.acc.Max()
	lines := make([]string, h)
	for sy := 0; sy < h; sy++ {
		var row styledRow
		gy := m.offsetY + sy
		for sx := 0; sx < w; sx++ {
			gx := m.offsetX + sx
			if gx < 0 || gy < 0 || gx >= dim || gy >= dim {
				row.put(' ', nil)
				continue
			}
			c := m.acc.At(geom.Point{X: gx, Y: gy})
			st := heatStyle(c, peak)
			if m.hovering && gx == m.hoverX && gy == m.hoverY {
				st = &hoverStyle
			}
			row.put(rune(grid.Glyph(c)), st)
		}
		lines[sy] = row.String()
	}
	return strings.Join(lines, "\n")
}

// gridToMicro maps a grid point into the 2x4-per-cell microgrid spanning the bbox.
func (m Model) gridToMicro(p geom.Point, w, h int) (int, int, bool) {
	if !m.hasBBox {
		return 0, 0, false
	}
	wMic, hMic := w*2, h*4
	mx := (p.X - m.bbox.MinX) * (wMic - 1) / max(1, m.bbox.Width()-1)
	my := (p.Y - m.bbox.MinY) * (hMic - 1) / max(1, m.bbox.Height()-1)
	return mx, my, true
}

// cellToGrid converts a map cell back to the grid point it shows.
func (m Model) cellToGrid(cx, cy, w, h int) (geom.Point, bool) {
	if m.acc == nil {
		return geom.Point{}, false
	}
	var p geom.Point
	if m.overview {
		if !m.hasBBox || w <= 1 || h <= 1 {
			return geom.Point{}, false
		}
		p.X = m.bbox.MinX + cx*2*(m.bbox.Width()-1)/(w*2-1)
		p.Y = m.bbox.MinY + cy*4*(m.bbox.Height()-1)/(h*4-1)
	} else {
		p = geom.Point{X: m.offsetX + cx, Y: m.offsetY + cy}
	}
	dim := m.acc.Dimension()
	if p.X < 0 || p.Y < 0 || p.X >= dim || p.Y >= dim {
		return geom.Point{}, false
	}
	return p, true
}

// renderOverview draws the whole bbox: accumulated segments as braille
// lines, overlap cells on a second layer drawn on top.
func (m Model) renderOverview(w, h int) string {
	cover := newBrailleBuf(w, h)
	hot := newBrailleBuf(w, h)
	peak := m.acc.Max()
	hotStyle := heatStyle(peak, peak)
	for _, l := range m.segments {
		if m.cfg.StraightOnly && !l.Straight() {
			continue
		}
		x0, y0, ok0 := m.gridToMicro(l.Start, w, h)
		x1, y1, ok1 := m.gridToMicro(l.End, w, h)
		if ok0 && ok1 {
			cover.drawLineMicro(x0, y0, x1, y1)
		}
	}
	for p := range m.acc.Cells(2) {
		if mx, my, ok := m.gridToMicro(p, w, h); ok {
			hot.setPixel(mx, my)
		}
	}
	hx, hy := -1, -1
	if m.hovering {
		if mx, my, ok := m.gridToMicro(geom.Point{X: m.hoverX, Y: m.hoverY}, w, h); ok {
			hx, hy = mx/2, my/4
		}
	}
	lines := make([]string, h)
	for cy := 0; cy < h; cy++ {
		var row styledRow
		for cx := 0; cx < w; cx++ {
			switch {
			case cx == hx && cy == hy:
				row.put('◯', &hoverStyle)
			case hot.m[cy][cx] != 0:
				row.put(hot.glyph(cx, cy), hotStyle)
			case cover.m[cy][cx] != 0:
				row.put(cover.glyph(cx, cy), &coverStyle)
			default:
				row.put(' ', nil)
			}
		}
		lines[cy] = row.String()
	}
	return strings.Join(lines, "\n")
}

// inspectText describes a grid cell and the segments through it.
func (m Model) inspectText(p geom.Point) string {
	meta := []string{
		fmt.Sprintf("cell: %v", p),
		fmt.Sprintf("count: %d", m.acc.At(p)),
	}
	n := 0
	for _, l := range m.segments {
		if m.cfg.StraightOnly && !l.Straight() {
			continue
		}
		for q := range l.Points() {
			if q == p {
				n++
				if n <= 8 {
					meta = append(meta, fmt.Sprintf("  %v (%v)", l, l.Orientation()))
				}
				break
			}
		}
	}
	if n > 8 {
		meta = append(meta, fmt.Sprintf("  … %d more", n-8))
	}
	return strings.Join(meta, "\n")
}
