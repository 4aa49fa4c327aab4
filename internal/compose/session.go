package compose

import (
	"errors"
	"time"
)

var (
	ErrNotOpen     = errors.New("picker is not open")
	ErrNoTimeDraft = errors.New("no time draft open")
)

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Outcome is how the last edit cycle ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCommitted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// ClockMode is which hand a time draft is editing.
type ClockMode int

const (
	ClockHour ClockMode = iota
	ClockMinute
)

func (m ClockMode) String() string {
	if m == ClockMinute {
		return "minute"
	}
	return "hour"
}

// TimeDraft is the nested clock dialog's own working copy.
type TimeDraft struct {
	value time.Time
	mode  ClockMode
}

func (d *TimeDraft) Value() time.Time { return d.value }
func (d *TimeDraft) Mode() ClockMode { return d.mode }
func (d *TimeDraft) SetMode(m ClockMode) { d.mode = m }

// SetHour sets the draft hour. When advance is set the draft moves on to
// minutes, as after a completed tap on the hour dial.
func (d *TimeDraft) SetHour(h int, advance bool) {
	d.value = MergeTimePart(d.value, TimePart{Hour: h, Minute: d.value.Minute()})
	if advance {
		d.mode = ClockMinute
	}
}

func (d *TimeDraft) SetMinute(m int) {
	d.value = MergeTimePart(d.value, TimePart{Hour: d.value.Hour(), Minute: m})
}

// Step moves the active hand by delta units, wrapping around the dial.
func (d *TimeDraft) Step(delta int) {
	if d.mode == ClockMinute {
		d.SetMinute(((d.value.Minute()+delta)%60 + 60) % 60)
		return
	}
	d.SetHour(d.value.Hour()+delta, false)
}

// Session owns the working timestamp for one open/edit/close cycle at a time.
// It is not safe for concurrent use.
type Session struct {
	now func() time.Time

	initial      time.Time
	hasInitial   bool
	committed    time.Time
	hasCommitted bool

	state   State
	working time.Time
	draft   *TimeDraft
	outcome Outcome
}

type Option func(*Session)

// WithClock overrides the fallback clock used when no value is known.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithInitial seeds the externally supplied current value.
func WithInitial(t time.Time) Option {
	return func(s *Session) {
		if !t.IsZero() {
			s.initial = t
			s.hasInitial = true
		}
	}
}

// WithCommitted restores a value committed by an earlier session.
func WithCommitted(t time.Time) Option {
	return func(s *Session) {
		if !t.IsZero() {
			s.committed = t
			s.hasCommitted = true
		}
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) State() State { return s.state }
func (s *Session) Outcome() Outcome { return s.outcome }

// Committed returns the last committed value, if any.
func (s *Session) Committed() (time.Time, bool) {
	return s.committed, s.hasCommitted
}

// Open starts an edit cycle. The working copy starts from the last committed
// value, else the initial value, else now. Opening an open session is a no-op.
func (s *Session) Open() time.Time {
	if s.state == StateOpen {
		return s.working
	}
	switch {
	case s.hasCommitted:
		s.working = s.committed
	case s.hasInitial:
		s.working = s.initial
	default:
		s.working = s.now()
	}
	s.state = StateOpen
	s.draft = nil
	s.outcome = OutcomeNone
	return s.working
}

func (s *Session) Working() (time.Time, error) {
	if s.state != StateOpen {
		return time.Time{}, ErrNotOpen
	}
	return s.working, nil
}

func (s *Session) PickDate(d DatePart) (time.Time, error) {
	if s.state != StateOpen {
		return time.Time{}, ErrNotOpen
	}
	s.working = MergeDatePart(s.working, d)
	return s.working, nil
}

func (s *Session) PickTime(p TimePart) (time.Time, error) {
	if s.state != StateOpen {
		return time.Time{}, ErrNotOpen
	}
	s.working = MergeTimePart(s.working, p)
	return s.working, nil
}

// OpenTime starts the nested clock dialog from the current working value,
// in hour mode.
func (s *Session) OpenTime() (*TimeDraft, error) {
	if s.state != StateOpen {
		return nil, ErrNotOpen
	}
	s.draft = &TimeDraft{value: s.working, mode: ClockHour}
	return s.draft, nil
}

// Draft returns the open time draft, or nil.
func (s *Session) Draft() *TimeDraft { return s.draft }

// CommitTime merges the draft's hour and minute into the working value.
func (s *Session) CommitTime() (time.Time, error) {
	if s.state != StateOpen {
		return time.Time{}, ErrNotOpen
	}
	if s.draft == nil {
		return time.Time{}, ErrNoTimeDraft
	}
	s.working = MergeTimePart(s.working, TimePartOf(s.draft.value))
	s.draft = nil
	return s.working, nil
}

func (s *Session) CancelTime() error {
	if s.draft == nil {
		return ErrNoTimeDraft
	}
	s.draft = nil
	return nil
}

// Commit emits the merged working value, records it as the last committed
// value and closes the session.
func (s *Session) Commit() (time.Time, error) {
	if s.state != StateOpen {
		return time.Time{}, ErrNotOpen
	}
	v := Commit(s.working)
	s.committed = v
	s.hasCommitted = true
	s.close(OutcomeCommitted)
	return v, nil
}

// Cancel discards pending edits and closes the session.
func (s *Session) Cancel() error {
	if s.state != StateOpen {
		return ErrNotOpen
	}
	s.close(OutcomeCancelled)
	return nil
}

func (s *Session) close(o Outcome) {
	s.state = StateClosed
	s.working = time.Time{}
	s.draft = nil
	s.outcome = o
}
