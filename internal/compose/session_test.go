package compose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSession_OpenFallsBackToNow(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, 5, 1, 10, 20, 30, 0, time.UTC)
	s := NewSession(WithClock(fixedClock(now)))
	assert.Equal(t, StateClosed, s.State())

	got := s.Open()
	assert.Equal(t, now, got)
	assert.Equal(t, StateOpen, s.State())
}

func TestSession_OpenPrefersInitialOverNow(t *testing.T) {
	t.Parallel()

	initial := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSession(WithInitial(initial), WithClock(fixedClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, initial, s.Open())
}

func TestSession_CommitMergesDateAndTime(t *testing.T) {
	t.Parallel()

	initial := time.Date(2023, 5, 1, 0, 0, 17, 0, time.UTC)
	s := NewSession(WithInitial(initial))
	s.Open()

	_, err := s.PickTime(TimePart{Hour: 14, Minute: 30})
	require.NoError(t, err)
	_, err = s.PickDate(DatePart{Year: 2023, Month: time.June, Day: 2})
	require.NoError(t, err)

	v, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 2, 14, 30, 17, 0, time.UTC), v)
	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, OutcomeCommitted, s.Outcome())

	committed, ok := s.Committed()
	require.True(t, ok)
	assert.Equal(t, v, committed)

	// The next cycle starts from the committed value.
	assert.Equal(t, v, s.Open())
}

func TestSession_CancelRevertsToLastCommitted(t *testing.T) {
	t.Parallel()

	committed := time.Date(2022, 12, 24, 18, 0, 0, 0, time.UTC)
	s := NewSession(WithCommitted(committed), WithInitial(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, committed, s.Open())

	_, err := s.PickDate(DatePart{Year: 2023, Month: time.January, Day: 1})
	require.NoError(t, err)
	require.NoError(t, s.Cancel())
	assert.Equal(t, OutcomeCancelled, s.Outcome())

	_, err = s.Working()
	assert.ErrorIs(t, err, ErrNotOpen)

	assert.Equal(t, committed, s.Open())
}

func TestSession_ClosedRejectsEdits(t *testing.T) {
	t.Parallel()

	s := NewSession()
	_, err := s.PickDate(DatePart{Year: 2023, Month: time.January, Day: 1})
	assert.ErrorIs(t, err, ErrNotOpen)
	_, err = s.PickTime(TimePart{Hour: 1})
	assert.ErrorIs(t, err, ErrNotOpen)
	_, err = s.Commit()
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, s.Cancel(), ErrNotOpen)
	_, err = s.OpenTime()
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestSession_TimeDraft(t *testing.T) {
	t.Parallel()

	initial := time.Date(2023, 5, 1, 9, 5, 30, 0, time.UTC)
	s := NewSession(WithInitial(initial))
	s.Open()

	d, err := s.OpenTime()
	require.NoError(t, err)
	assert.Equal(t, ClockHour, d.Mode())

	d.SetHour(15, true)
	assert.Equal(t, ClockMinute, d.Mode())
	d.SetMinute(45)
	d.Step(20) // wraps to 05 without touching the hour
	assert.Equal(t, 15, d.Value().Hour())
	assert.Equal(t, 5, d.Value().Minute())

	// Draft edits do not reach the working value until confirmed.
	w, err := s.Working()
	require.NoError(t, err)
	assert.Equal(t, initial, w)

	w, err = s.CommitTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 1, 15, 5, 30, 0, time.UTC), w)
	assert.Nil(t, s.Draft())

	_, err = s.CommitTime()
	assert.ErrorIs(t, err, ErrNoTimeDraft)
}

func TestSession_CancelTimeKeepsWorking(t *testing.T) {
	t.Parallel()

	initial := time.Date(2023, 5, 1, 9, 5, 0, 0, time.UTC)
	s := NewSession(WithInitial(initial))
	s.Open()

	d, err := s.OpenTime()
	require.NoError(t, err)
	d.Step(-10) // 23:05 the previous hour wraps within the day
	assert.Equal(t, 23, d.Value().Hour())
	assert.Equal(t, 1, d.Value().Day())

	require.NoError(t, s.CancelTime())
	w, err := s.Working()
	require.NoError(t, err)
	assert.Equal(t, initial, w)
	assert.ErrorIs(t, s.CancelTime(), ErrNoTimeDraft)
}
