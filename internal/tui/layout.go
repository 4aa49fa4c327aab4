package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	modalMaxWidth = 44
	modalPadX     = 2
	// Rows above the body: the header line plus the top padding line.
	modalBodyTop = 2
)

// modalWidth is the outer width of the picker box for a terminal width.
func modalWidth(termWidth int) int {
	if termWidth <= 0 || termWidth > modalMaxWidth {
		return modalMaxWidth
	}
	return termWidth
}

func modalBodyWidth(termWidth int) int {
	w := modalWidth(termWidth) - 2*modalPadX
	if w < 1 {
		w = 1
	}
	return w
}

// renderModalBox draws a borderless box anchored at the top-left cell: one
// header line, then the body with modalPadX columns and one row of padding.
// Mouse hit-testing relies on that geometry (see bodyCell).
func renderModalBox(termWidth int, title, body string) string {
	w := modalWidth(termWidth)
	bodyW := modalBodyWidth(termWidth)

	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, modalPadX).
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Render(xansi.Truncate(title, bodyW, "…"))

	lines := strings.Split(body, "\n")
	for i, ln := range lines {
		lines[i] = normalizePane(ln, bodyW, 1)
	}
	content := lipgloss.NewStyle().
		Width(w).
		Padding(1, modalPadX).
		Foreground(colorModalSurfaceFg).
		Background(colorModalSurfaceBg).
		Render(strings.Join(lines, "\n"))

	return header + "\n" + content
}

// bodyCell converts a screen cell to body-relative coordinates.
func bodyCell(x, y int) (col, row int) {
	return x - modalPadX, y - modalBodyTop
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width <= 0:
				ln = ""
			case width == 1:
				ln = xansi.Cut(ln, 0, 1)
			default:
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

// button is a clickable label on a body row.
type button struct {
	label  string
	active bool
}

// renderButtons lays out buttons separated by one space and returns the
// line plus each button's [start, end) column span.
func renderButtons(btns []button) (string, [][2]int) {
	parts := make([]string, 0, 2*len(btns))
	spans := make([][2]int, 0, len(btns))
	x := 0
	for i, b := range btns {
		if i > 0 {
			parts = append(parts, " ")
			x++
		}
		s := focusBtn(b.active).Render(b.label)
		w := xansi.StringWidth(s)
		spans = append(spans, [2]int{x, x + w})
		parts = append(parts, s)
		x += w
	}
	return strings.Join(parts, ""), spans
}

func hitSpan(spans [][2]int, col int) int {
	for i, s := range spans {
		if col >= s[0] && col < s[1] {
			return i
		}
	}
	return -1
}
