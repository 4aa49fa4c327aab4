package tui

import (
	"time"

	"datetime-picker/internal/calendar"
	"datetime-picker/internal/compose"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// pickerModel hosts one open picker session: the calendar view, and the
// clock dialog on top of it while a time draft is open.
type pickerModel struct {
	sess  *compose.Session
	ws    time.Weekday
	today time.Time
	title string

	// cursor is the focused civil day; grid is the month containing it.
	cursor time.Time
	grid   calendar.Grid

	width  int
	height int

	keys      calendarKeyMap
	clockKeys clockKeyMap
	help      help.Model

	// dragging is set while the mouse button is held on the clock face.
	dragging bool

	log logrus.FieldLogger
}

func newPickerModel(sess *compose.Session, ws time.Weekday, today time.Time, title string, log logrus.FieldLogger) pickerModel {
	working := sess.Open()
	m := pickerModel{
		sess:      sess,
		ws:        ws,
		today:     calendar.Civil(today),
		title:     title,
		keys:      newCalendarKeyMap(),
		clockKeys: newClockKeyMap(),
		help:      help.New(),
		log:       log,
	}
	(&m).moveCursor(calendar.Civil(working))
	return m
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = modalBodyWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		if m.sess.Draft() != nil {
			return m.updateClockKey(msg)
		}
		return m.updateCalendarKey(msg)

	case tea.MouseMsg:
		col, row := bodyCell(msg.X, msg.Y)
		if m.sess.Draft() != nil {
			return m.updateClockMouse(msg, col, row)
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.updateCalendarMouse(col, row)
	}
	return m, nil
}

func (m pickerModel) updateCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.finish(false)
	case key.Matches(msg, m.keys.Done):
		return m.finish(true)
	case key.Matches(msg, m.keys.Left):
		(&m).moveCursor(m.cursor.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.Right):
		(&m).moveCursor(m.cursor.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Up):
		(&m).moveCursor(m.cursor.AddDate(0, 0, -7))
	case key.Matches(msg, m.keys.Down):
		(&m).moveCursor(m.cursor.AddDate(0, 0, 7))
	case key.Matches(msg, m.keys.PrevMonth):
		(&m).shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		(&m).shiftMonth(1)
	case key.Matches(msg, m.keys.Pick):
		(&m).pickDay(m.cursor)
	case key.Matches(msg, m.keys.Clock):
		(&m).openClock()
	}
	return m, nil
}

func (m pickerModel) updateClockKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.sess.Draft()
	switch {
	case key.Matches(msg, m.clockKeys.Cancel):
		_ = m.sess.CancelTime()
	case key.Matches(msg, m.clockKeys.Confirm):
		(&m).confirmClock()
	case key.Matches(msg, m.clockKeys.Done):
		(&m).confirmClock()
		return m.finish(true)
	case key.Matches(msg, m.clockKeys.Toggle):
		if d.Mode() == compose.ClockHour {
			d.SetMode(compose.ClockMinute)
		} else {
			d.SetMode(compose.ClockHour)
		}
	case key.Matches(msg, m.clockKeys.Dec):
		d.Step(-1)
	case key.Matches(msg, m.clockKeys.Inc):
		d.Step(1)
	case key.Matches(msg, m.clockKeys.BigDec):
		d.Step(-bigStep(d.Mode()))
	case key.Matches(msg, m.clockKeys.BigInc):
		d.Step(bigStep(d.Mode()))
	}
	return m, nil
}

func bigStep(mode compose.ClockMode) int {
	if mode == compose.ClockMinute {
		return 5
	}
	return 1
}

func (m pickerModel) updateCalendarMouse(col, row int) (tea.Model, tea.Cmd) {
	hit := m.calendarHit(col, row)
	switch hit.kind {
	case hitPrevMonth:
		(&m).shiftMonth(-1)
	case hitNextMonth:
		(&m).shiftMonth(1)
	case hitDay:
		(&m).moveCursor(hit.day)
		(&m).pickDay(hit.day)
	case hitButton:
		switch hit.index {
		case calButtonTime:
			(&m).openClock()
		case calButtonDone:
			return m.finish(true)
		case calButtonCancel:
			return m.finish(false)
		}
	}
	return m, nil
}

func (m pickerModel) updateClockMouse(msg tea.MouseMsg, col, row int) (tea.Model, tea.Cmd) {
	d := m.sess.Draft()

	if msg.Action == tea.MouseActionRelease {
		wasDragging := m.dragging
		m.dragging = false
		// A completed tap on the hour ring moves on to minutes.
		if wasDragging && d.Mode() == compose.ClockHour {
			d.SetMode(compose.ClockMinute)
		}
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Action == tea.MouseActionMotion && !m.dragging {
		return m, nil
	}

	hit := m.clockHit(col, row)
	switch hit.kind {
	case hitFace:
		m.dragging = true
		(&m).pointClock(hit.col, hit.row)
	case hitTab:
		if msg.Action == tea.MouseActionPress {
			d.SetMode(compose.ClockMode(hit.index))
		}
	case hitButton:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch hit.index {
		case clockButtonOK:
			(&m).confirmClock()
		case clockButtonCancel:
			_ = m.sess.CancelTime()
		}
	}
	return m, nil
}

// pointClock applies a clock face cell to the draft's active hand.
func (m *pickerModel) pointClock(col, row int) {
	d := m.sess.Draft()
	v, ring := resolveClockCell(d.Mode(), col, row)
	if d.Mode() == compose.ClockMinute {
		d.SetMinute(v)
		m.log.WithFields(logrus.Fields{"col": col, "row": row, "minute": v}).Debug("clock pointer")
		return
	}
	d.SetHour(v, false)
	m.log.WithFields(logrus.Fields{"col": col, "row": row, "hour": v, "ring": ring.String()}).Debug("clock pointer")
}

// moveCursor focuses day and follows it to its month.
func (m *pickerModel) moveCursor(day time.Time) {
	m.cursor = calendar.Civil(day)
	if m.grid.Weeks == nil || !calendar.SameMonth(m.grid.Month, m.cursor) {
		m.rebuild()
	}
}

// shiftMonth moves the cursor to the same day n months away, clamped.
func (m *pickerModel) shiftMonth(n int) {
	first := calendar.AddMonths(m.cursor, n)
	day := calendar.ClampDay(first.Year(), first.Month(), m.cursor.Day())
	m.moveCursor(time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC))
}

func (m *pickerModel) rebuild() {
	var selected time.Time
	if w, err := m.sess.Working(); err == nil {
		selected = calendar.Civil(w)
	}
	m.grid = calendar.Build(m.cursor, selected, m.ws, m.today)
}

func (m *pickerModel) pickDay(day time.Time) {
	w, err := m.sess.PickDate(compose.DatePartOf(day))
	if err != nil {
		return
	}
	m.log.WithField("working", w.Format(time.RFC3339)).Debug("day picked")
	m.rebuild()
}

func (m *pickerModel) openClock() {
	if _, err := m.sess.OpenTime(); err != nil {
		return
	}
	m.dragging = false
}

func (m *pickerModel) confirmClock() {
	w, err := m.sess.CommitTime()
	if err != nil {
		return
	}
	m.dragging = false
	m.log.WithField("working", w.Format(time.RFC3339)).Debug("time picked")
}

func (m pickerModel) finish(commit bool) (tea.Model, tea.Cmd) {
	if m.sess.Draft() != nil {
		_ = m.sess.CancelTime()
	}
	if commit {
		v, err := m.sess.Commit()
		if err == nil {
			m.log.WithField("value", v.Format(time.RFC3339)).Debug("pick committed")
		}
	} else {
		_ = m.sess.Cancel()
		m.log.Debug("pick cancelled")
	}
	return m, tea.Quit
}
