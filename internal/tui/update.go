package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"ventmap/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().h-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "esc", "t":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
		case "s":
			m.cfg.StraightOnly = !m.cfg.StraightOnly
			m.recompute()
			if m.segments == nil {
				m.status = fmt.Sprintf("straight only: %v", m.cfg.StraightOnly)
			}
		case "o":
			m.overview = !m.overview
			m.status = fmt.Sprintf("overview: %v", m.overview)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().h-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			if len(m.segments) == 0 {
				m.status = "no segments loaded"
				break
			}
			m.showTable = true
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			if !m.hovering {
				m.status = "hover a cell to inspect"
				break
			}
			m.inspectPopup = m.inspectText(geom.Point{X: m.hoverX, Y: m.hoverY})
			m.status = "inspect popup"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "home":
			if m.hasBBox {
				m.offsetX, m.offsetY = m.bbox.MinX, m.bbox.MinY
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		case "pgup":
			m.offsetY -= m.layout().h
		case "pgdown":
			m.offsetY += m.layout().h
		}
	case tea.MouseMsg:
		r := m.layout()
		cx, cy := msg.X-r.x, msg.Y-r.y
		m.hovering = false
		if cx >= 0 && cx < r.w && cy >= 0 && cy < r.h {
			if p, ok := m.cellToGrid(cx, cy, r.w, r.h); ok {
				m.hovering = true
				m.hoverX, m.hoverY = p.X, p.Y
				m.hoverCount = m.acc.At(p)
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		lines, err := geom.ParseSegments(text)
		if err != nil {
			m.status = "parse error: " + err.Error()
			return m, nil
		}
		if err := m.setSegments(lines); err != nil {
			m.status = "compute error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.status = "rendered paste  " + m.summary()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}
