package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"datetime-picker/internal/compose"
	"datetime-picker/internal/model"
)

var (
	reDateOnly  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reDateTime  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2}(?::\d{2})?)$`)
	reClock     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reYearMonth = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// parseValue parses:
// - YYYY-MM-DD (local midnight)
// - YYYY-MM-DD HH:MM[:SS] (local date+time)
// - RFC3339 / RFC3339Nano (offset kept)
func parseValue(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty datetime")
	}
	if reDateOnly.MatchString(s) {
		return time.ParseInLocation("2006-01-02", s, loc)
	}
	if m := reDateTime.FindStringSubmatch(s); m != nil {
		layout := "2006-01-02 15:04"
		if len(m[2]) == len("15:04:05") {
			layout = "2006-01-02 15:04:05"
		}
		return time.ParseInLocation(layout, m[1]+" "+m[2], loc)
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC3339)", s)
}

// parseDatePart accepts YYYY-MM-DD with any day 1..31; merging clamps it to
// the month, so 2023-02-31 is a valid request for the last day of February.
func parseDatePart(s string) (compose.DatePart, error) {
	m := reDateOnly.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return compose.DatePart{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if mo < 1 || mo > 12 {
		return compose.DatePart{}, fmt.Errorf("invalid date %q: month out of range", s)
	}
	if d < 1 || d > 31 {
		return compose.DatePart{}, fmt.Errorf("invalid date %q: day out of range", s)
	}
	return compose.DatePart{Year: y, Month: time.Month(mo), Day: d}, nil
}

// parseTimePart accepts H:MM or HH:MM; hour 24 is midnight.
func parseTimePart(s string) (compose.TimePart, error) {
	m := reClock.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return compose.TimePart{}, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h > 24 || mi > 59 {
		return compose.TimePart{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return compose.TimePart{Hour: h, Minute: mi}, nil
}

// parseMonth parses YYYY-MM into the first day of that month (UTC).
func parseMonth(s string) (time.Time, error) {
	m := reYearMonth.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	if mo < 1 || mo > 12 {
		return time.Time{}, fmt.Errorf("invalid month %q: month out of range", s)
	}
	return time.Date(y, time.Month(mo), 1, 0, 0, 0, 0, time.UTC), nil
}

// valueView is how a picked timestamp is printed.
type valueView struct {
	Slot  string `json:"slot,omitempty"`
	Value string `json:"value"`
	model.DateTime
	ID string `json:"id,omitempty"`
}

func viewOf(slot string, v time.Time) valueView {
	return valueView{Slot: slot, Value: v.Format(time.RFC3339), DateTime: model.DateTimeOf(v)}
}
