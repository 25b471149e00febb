package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
	colorBlue   = lipgloss.Color("#4385BE")
	colorYellow = lipgloss.Color("#D0A215")
)

// styles are bound to the renderer of the output they are written to, so
// color is dropped automatically when that output is not a terminal.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	border  lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	energy  lipgloss.Style
	neutral lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		header:  r.NewStyle().Bold(true).Foreground(colorAccent),
		label:   r.NewStyle().Foreground(colorMuted),
		value:   r.NewStyle().Foreground(colorText),
		muted:   r.NewStyle().Foreground(colorMuted),
		border:  r.NewStyle().Foreground(colorBorder),
		good:    r.NewStyle().Foreground(colorGreen),
		warn:    r.NewStyle().Foreground(colorOrange),
		bad:     r.NewStyle().Bold(true).Foreground(colorRed),
		energy:  r.NewStyle().Foreground(colorBlue),
		neutral: r.NewStyle().Foreground(colorYellow),
	}
}
