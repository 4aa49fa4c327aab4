package tui

import (
	"fmt"
	"strings"
	"time"

	"datetime-picker/internal/calendar"
	"datetime-picker/internal/compose"
	"datetime-picker/internal/dial"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth = 4
	gridWidth = 7 * cellWidth

	// Calendar body rows.
	rowMonth     = 0
	rowWeekdays  = 1
	rowFirstWeek = 2

	// Clock body rows.
	rowTabs   = 0
	rowCanvas = 2

	// Ring radii in normalized dial units; labels sit just inside the edge.
	outerRadius = 0.44
)

const (
	calButtonTime = iota
	calButtonDone
	calButtonCancel
)

const (
	clockButtonOK = iota
	clockButtonCancel
)

type hitKind int

const (
	hitNone hitKind = iota
	hitPrevMonth
	hitNextMonth
	hitDay
	hitButton
	hitTab
	hitFace
)

type hit struct {
	kind  hitKind
	day   time.Time
	index int
	// col and row are the canvas cell of a hitFace.
	col, row int
}

func centeredLeft(bodyW, w int) int {
	if bodyW <= w {
		return 0
	}
	return (bodyW - w) / 2
}

func (m pickerModel) View() string {
	working, _ := m.sess.Working()
	title := "Pick"
	if strings.TrimSpace(m.title) != "" {
		title += " " + m.title
	}
	title += "  " + working.Format("Mon 2006-01-02 15:04")

	if d := m.sess.Draft(); d != nil {
		return renderModalBox(m.width, title, m.clockBody(d))
	}
	return renderModalBox(m.width, title, m.calendarBody())
}

func indent(n int, s string) string {
	return strings.Repeat(" ", n) + s
}

func (m pickerModel) calendarButtons() []button {
	working, _ := m.sess.Working()
	return []button{
		{label: "Time " + working.Format("15:04")},
		{label: "Done", active: true},
		{label: "Cancel"},
	}
}

func (m pickerModel) calendarBody() string {
	bodyW := modalBodyWidth(m.width)
	left := centeredLeft(bodyW, gridWidth)

	var lines []string

	// Month header: prev arrow, centered month name, next arrow.
	monthTitle := lipgloss.PlaceHorizontal(gridWidth-2, lipgloss.Center, m.grid.Month.Format("January 2006"))
	header := styleChrome().Render(glyphPrev()) + lipgloss.NewStyle().Bold(true).Render(monthTitle) + styleChrome().Render(glyphNext())
	lines = append(lines, indent(left, header))

	var wd strings.Builder
	for _, h := range calendar.WeekdayHeaders(m.grid.WeekStart) {
		wd.WriteString(styleMuted().Render(fmt.Sprintf(" %-2s ", h)))
	}
	lines = append(lines, indent(left, wd.String()))

	for _, w := range m.grid.Weeks {
		var b strings.Builder
		for _, d := range w {
			b.WriteString(m.dayStyle(d).Render(fmt.Sprintf(" %2d ", d.Date.Day())))
		}
		lines = append(lines, indent(left, b.String()))
	}

	btns, _ := renderButtons(m.calendarButtons())
	lines = append(lines, "", indent(left, btns), "", m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m pickerModel) dayStyle(d calendar.Day) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch {
	case d.IsSelected:
		st = st.Foreground(colorAccentFg).Background(colorAccent).Bold(true)
	case d.IsToday:
		st = st.Foreground(colorToday).Bold(true)
	case d.IsOutOfMonth:
		st = styleMuted()
	}
	if calendar.SameDay(d.Date, m.cursor) {
		if d.IsSelected {
			st = st.Underline(true)
		} else {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
	}
	return st
}

// calendarHit resolves a body cell on the calendar view.
func (m pickerModel) calendarHit(col, row int) hit {
	bodyW := modalBodyWidth(m.width)
	left := centeredLeft(bodyW, gridWidth)
	gc := col - left

	switch {
	case row == rowMonth:
		if gc == 0 {
			return hit{kind: hitPrevMonth}
		}
		if gc == gridWidth-1 {
			return hit{kind: hitNextMonth}
		}
	case row >= rowFirstWeek && row < rowFirstWeek+len(m.grid.Weeks):
		if gc >= 0 && gc < gridWidth {
			return hit{kind: hitDay, day: m.grid.Weeks[row-rowFirstWeek][gc/cellWidth].Date}
		}
	case row == rowFirstWeek+len(m.grid.Weeks)+1:
		_, spans := renderButtons(m.calendarButtons())
		if i := hitSpan(spans, gc); i >= 0 {
			return hit{kind: hitButton, index: i}
		}
	}
	return hit{kind: hitNone}
}

func clockTabs(mode compose.ClockMode) []button {
	return []button{
		{label: "Hours", active: mode == compose.ClockHour},
		{label: "Minutes", active: mode == compose.ClockMinute},
	}
}

func clockButtons() []button {
	return []button{
		{label: "OK", active: true},
		{label: "Cancel"},
	}
}

func (m pickerModel) clockBody(d *compose.TimeDraft) string {
	bodyW := modalBodyWidth(m.width)
	left := centeredLeft(bodyW, clockCols)

	tabs, _ := renderButtons(clockTabs(d.Mode()))
	value := lipgloss.NewStyle().Bold(true).Render(d.Value().Format("15:04"))

	lines := []string{indent(left, tabs+"  "+value), ""}
	for _, ln := range renderClockFace(d) {
		lines = append(lines, indent(left, ln))
	}
	btns, _ := renderButtons(clockButtons())
	lines = append(lines, "", indent(left, btns), "", m.help.View(m.clockKeys))
	return strings.Join(lines, "\n")
}

// clockHit resolves a body cell on the clock dialog.
func (m pickerModel) clockHit(col, row int) hit {
	bodyW := modalBodyWidth(m.width)
	left := centeredLeft(bodyW, clockCols)
	cc := col - left

	switch {
	case row == rowTabs:
		_, spans := renderButtons(clockTabs(compose.ClockHour))
		if i := hitSpan(spans, cc); i >= 0 {
			return hit{kind: hitTab, index: i}
		}
	case row >= rowCanvas && row < rowCanvas+clockRows:
		if inCanvas(cc, row-rowCanvas) {
			return hit{kind: hitFace, col: cc, row: row - rowCanvas}
		}
	case row == rowCanvas+clockRows+1:
		_, spans := renderButtons(clockButtons())
		if i := hitSpan(spans, cc); i >= 0 {
			return hit{kind: hitButton, index: i}
		}
	}
	return hit{kind: hitNone}
}

type faceCell struct {
	ch     string
	active bool
	muted  bool
}

type clockFace [clockRows][clockCols]faceCell

// labelStart is the first column of a label of width n centered on col and
// kept inside the canvas.
func labelStart(col, n int) int {
	start := col - n/2
	if start < 0 {
		start = 0
	}
	if start+n > clockCols {
		start = clockCols - n
	}
	return start
}

func (f *clockFace) put(col, row int, s string, active, muted bool) {
	runes := []rune(s)
	start := labelStart(col, len(runes))
	for i, r := range runes {
		if inCanvas(start+i, row) {
			f[row][start+i] = faceCell{ch: string(r), active: active, muted: muted}
		}
	}
}

func (f *clockFace) empty(col, row int) bool {
	return inCanvas(col, row) && f[row][col].ch == ""
}

func hourLabel(v int) string {
	if v == 24 {
		return "00"
	}
	return fmt.Sprint(v)
}

// faceLabel is a value drawn as text on the clock face.
type faceLabel struct {
	value      int
	ring       dial.Ring
	row        int
	start, end int
}

func placeLabel(r dial.Range, v int, radius float64, ring dial.Ring, text string) faceLabel {
	c, row := pointerCell(dial.Place(r.Rotation(v), radius), clockCols, clockRows)
	start := labelStart(c, len([]rune(text)))
	return faceLabel{value: v, ring: ring, row: row, start: start, end: start + len([]rune(text))}
}

// faceLabels lists the labels drawn in mode. Minute mode labels the major ticks.
func faceLabels(mode compose.ClockMode) []faceLabel {
	var out []faceLabel
	if mode == compose.ClockMinute {
		for _, v := range dial.Minutes.Values() {
			if dial.Minutes.ShowFull(v) {
				out = append(out, placeLabel(dial.Minutes, v, outerRadius, dial.RingMinute, fmt.Sprintf("%02d", v)))
			}
		}
		return out
	}
	for _, v := range dial.OuterHours.Values() {
		out = append(out, placeLabel(dial.OuterHours, v, outerRadius, dial.RingOuter, hourLabel(v)))
	}
	for _, v := range dial.InnerHours.Values() {
		out = append(out, placeLabel(dial.InnerHours, v, outerRadius*dial.InnerScale, dial.RingInner, hourLabel(v)))
	}
	return out
}

// resolveClockCell returns the value under a canvas cell. A cell covered by a
// drawn label yields that label's value, since rounding a label onto the
// canvas can move it into a neighbouring sector. Other cells resolve through
// the dial geometry. Hours come back as 0..23.
func resolveClockCell(mode compose.ClockMode, col, row int) (int, dial.Ring) {
	for _, l := range faceLabels(mode) {
		if row == l.row && col >= l.start && col < l.end {
			if mode == compose.ClockMinute {
				return l.value, l.ring
			}
			return l.value % 24, l.ring
		}
	}
	p := cellPointer(col, row, clockCols, clockRows)
	if mode == compose.ClockMinute {
		return dial.ResolveMinute(p), dial.RingMinute
	}
	return dial.ResolveHour(p)
}

// renderClockFace draws the dial for the draft's active hand, one string per
// canvas row.
func renderClockFace(d *compose.TimeDraft) []string {
	var f clockFace
	var (
		handRot    float64
		handRadius float64
	)

	if d.Mode() == compose.ClockMinute {
		active := d.Value().Minute()
		for _, v := range dial.Minutes.Values() {
			c, r := pointerCell(dial.Place(dial.Minutes.Rotation(v), outerRadius), clockCols, clockRows)
			switch {
			case dial.Minutes.ShowFull(v):
				f.put(c, r, fmt.Sprintf("%02d", v), v == active, false)
			case v == active:
				f.put(c, r, glyphHand(), true, false)
			case f.empty(c, r):
				f.put(c, r, glyphTick(), false, true)
			}
		}
		handRot, handRadius = dial.Minutes.Rotation(active), outerRadius
	} else {
		ring, active := dial.HourValue(d.Value().Hour())
		inner := outerRadius * dial.InnerScale
		for _, v := range dial.OuterHours.Values() {
			c, r := pointerCell(dial.Place(dial.OuterHours.Rotation(v), outerRadius), clockCols, clockRows)
			f.put(c, r, hourLabel(v), ring == dial.RingOuter && v == active, false)
		}
		for _, v := range dial.InnerHours.Values() {
			c, r := pointerCell(dial.Place(dial.InnerHours.Rotation(v), inner), clockCols, clockRows)
			f.put(c, r, hourLabel(v), ring == dial.RingInner && v == active, true)
		}
		if ring == dial.RingInner {
			handRot, handRadius = dial.InnerHours.Rotation(active), inner
		} else {
			handRot, handRadius = dial.OuterHours.Rotation(active), outerRadius
		}
	}

	for r := 0.05; r < handRadius-0.07; r += 0.02 {
		c, rw := pointerCell(dial.Place(handRot, r), clockCols, clockRows)
		if f.empty(c, rw) {
			f.put(c, rw, glyphHand(), false, false)
		}
	}
	f.put(clockCols/2, clockRows/2, glyphCenter(), false, false)

	activeSt := lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true)
	handSt := lipgloss.NewStyle().Foreground(colorAccent)
	out := make([]string, 0, clockRows)
	for row := range f {
		var b strings.Builder
		for _, cell := range f[row] {
			switch {
			case cell.ch == "":
				b.WriteByte(' ')
			case cell.active:
				b.WriteString(activeSt.Render(cell.ch))
			case cell.muted:
				b.WriteString(styleMuted().Render(cell.ch))
			case cell.ch == glyphHand() || cell.ch == glyphCenter():
				b.WriteString(handSt.Render(cell.ch))
			default:
				b.WriteString(cell.ch)
			}
		}
		out = append(out, b.String())
	}
	return out
}
