package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	box   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Faint(true),
		muted: r.NewStyle().Faint(true).Italic(true),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
