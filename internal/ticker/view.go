package ticker

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// View composites the visible items into the content box and renders the
// result through the widget style.
func (m *Model) View() string {
	w, h := m.contentSize()
	if w <= 0 || h <= 0 {
		return ""
	}

	blank := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = blank
	}

	for i := range m.visible {
		if i >= len(m.rects) {
			break
		}
		it := &m.visible[i]
		r := m.rects[i]
		for j, line := range it.lines {
			y := r.y + j
			if y < 0 || y >= h {
				continue
			}
			rows[y] = composeRow(line, it.widths[j], r.x, w, blank)
		}
	}

	return m.style.Render(strings.Join(rows, "\n"))
}

// composeRow places one item line at column x inside a window w cells wide,
// clipping whatever falls outside. The cut is ANSI-aware so styled content
// survives partial visibility.
func composeRow(line string, lineWidth, x, w int, blank string) string {
	if x >= w || x+lineWidth <= 0 {
		return blank
	}

	cutLeft := 0
	if x < 0 {
		cutLeft = -x
	}
	cutRight := lineWidth
	if x+lineWidth > w {
		cutRight = w - x
	}

	seg := line
	if cutLeft > 0 || cutRight < lineWidth {
		seg = ansi.Cut(line, cutLeft, cutRight)
	}

	left := x + cutLeft
	var b strings.Builder
	b.WriteString(blank[:left])
	b.WriteString(seg)
	b.WriteString(blank[:w-left-(cutRight-cutLeft)])
	return b.String()
}
