package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"ventmap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		// extensionless files are read in the native format
		if filepath.Ext(name) != "" && geom.Supported(name) {
			items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no segment files in current directory"
	}
}

// loadPath loads a segment file into the model.
func (m *Model) loadPath(p string) {
	lines, err := geom.LoadSegments(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	if err := m.setSegments(lines); err != nil {
		m.status = "compute error: " + err.Error()
		return
	}
	m.selPath = p
	m.status = "loaded: " + filepath.Base(p) + "  " + m.summary()
}
