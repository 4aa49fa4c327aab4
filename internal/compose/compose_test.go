package compose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMerge_TimeThenDatePreservesClock(t *testing.T) {
	t.Parallel()

	w := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	w = MergeTimePart(w, TimePart{Hour: 14, Minute: 30})
	assert.Equal(t, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), w)

	w = MergeDatePart(w, DatePart{Year: 2023, Month: time.June, Day: 2})
	assert.Equal(t, time.Date(2023, 6, 2, 14, 30, 0, 0, time.UTC), w)
}

func TestMergeDatePart_Idempotent(t *testing.T) {
	t.Parallel()

	w := time.Date(2022, 11, 30, 9, 15, 42, 123, time.UTC)
	d := DatePart{Year: 2024, Month: time.February, Day: 29}
	once := MergeDatePart(w, d)
	twice := MergeDatePart(MergeDatePart(w, d), d)
	assert.Equal(t, once, twice)
	assert.Equal(t, time.Date(2024, 2, 29, 9, 15, 42, 123, time.UTC), once)
}

func TestMergeDatePart_KeepsClockAndLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*3600)
	w := time.Date(2023, 3, 15, 22, 45, 7, 999, loc)
	got := MergeDatePart(w, DatePart{Year: 2021, Month: time.July, Day: 4})
	assert.Equal(t, time.Date(2021, 7, 4, 22, 45, 7, 999, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestMergeDatePart_ClampsDay(t *testing.T) {
	t.Parallel()

	w := time.Date(2023, 1, 31, 8, 0, 0, 0, time.UTC)
	got := MergeDatePart(w, DatePart{Year: 2023, Month: time.February, Day: 31})
	assert.Equal(t, time.Date(2023, 2, 28, 8, 0, 0, 0, time.UTC), got)
}

func TestMergeTimePart_PreservesSecondsAndDate(t *testing.T) {
	t.Parallel()

	w := time.Date(2023, 5, 1, 3, 4, 55, 500, time.UTC)
	tests := []struct {
		name string
		in   TimePart
		want time.Time
	}{
		{name: "plain", in: TimePart{Hour: 14, Minute: 30}, want: time.Date(2023, 5, 1, 14, 30, 55, 500, time.UTC)},
		{name: "hour 24 is midnight same day", in: TimePart{Hour: 24, Minute: 0}, want: time.Date(2023, 5, 1, 0, 0, 55, 500, time.UTC)},
		{name: "minute clamped", in: TimePart{Hour: 1, Minute: 75}, want: time.Date(2023, 5, 1, 1, 59, 55, 500, time.UTC)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MergeTimePart(w, tt.in))
		})
	}
}

func TestCommit_StripsMonotonicReading(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got := Commit(now)
	assert.True(t, now.Equal(got))
	assert.Equal(t, now.Round(0), got)
}

func TestParts_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2023-06-02", DatePart{Year: 2023, Month: time.June, Day: 2}.String())
	assert.Equal(t, "00:05", TimePart{Hour: 24, Minute: 5}.String())
	assert.Equal(t, DatePart{Year: 2023, Month: time.June, Day: 2}, DatePartOf(time.Date(2023, 6, 2, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimePart{Hour: 1, Minute: 7}, TimePartOf(time.Date(2023, 6, 2, 1, 7, 0, 0, time.UTC)))
}
