package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// table is a bordered text table. The first column is left-aligned, the
// others hold numbers and are right-aligned.
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (s styles) renderTable(t table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(s.border.Render(left))
		for i, w := range widths {
			b.WriteString(s.border.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(s.border.Render(mid))
			}
		}
		b.WriteString(s.border.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		b.WriteString(s.border.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(s.header.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(s.border.Render("│"))
		}
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		b.WriteString(s.border.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(s.value.Render(padded))
			b.WriteString(s.border.Render("│"))
		}
		b.WriteString("\n")
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// renderBar draws a horizontal bar filled to percent (0-100) of width cells.
func (s styles) renderBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return s.energy.Render(strings.Repeat("█", filled)) + s.muted.Render(strings.Repeat("░", width-filled))
}
