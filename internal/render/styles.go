package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles is the set of styles one Renderer uses. Without color every style
// renders its text unchanged.
type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	match  lipgloss.Style
	miss   lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
	box    lipgloss.Style
	border lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{
			title:  plain,
			label:  plain,
			value:  plain,
			match:  plain,
			miss:   plain,
			err:    plain,
			muted:  plain,
			box:    plain,
			border: plain,
			header: plain,
			cell:   plain.Padding(0, 1),
		}
	}

	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		label: r.NewStyle().
			Foreground(colorMuted),
		value: r.NewStyle().
			Bold(true),
		match: r.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		miss: r.NewStyle().
			Foreground(colorAccent),
		err: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		border: r.NewStyle().
			Foreground(colorMuted),
		header: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1),
		cell: r.NewStyle().
			Padding(0, 1),
	}
}
