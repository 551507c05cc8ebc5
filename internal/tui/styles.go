package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	coverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8"))
)

// heat colors overlap cells relative to the grid's peak count; the
// hottest cell always gets the last entry.
var heat = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
}

func heatStyle(count, peak uint32) *lipgloss.Style {
	switch {
	case count == 0:
		return &dimStyle
	case count == 1:
		return &coverStyle
	case peak <= 2:
		return &heat[len(heat)-1]
	}
	n, span := uint64(count-1)*uint64(len(heat)), uint64(peak-1)
	i := (n+span-1)/span - 1
	return &heat[min(i, uint64(len(heat)-1))]
}
