package model

import "time"

// DefaultSlot is used when a pick is not given a name.
const DefaultSlot = "default"

// Slot is a named, persisted committed value (e.g. "due", "default").
type Slot struct {
	Name      string    `json:"name"`
	Value     time.Time `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pick is one committed value in a slot's history.
type Pick struct {
	ID          string    `json:"id"`
	Slot        string    `json:"slot"`
	Value       time.Time `json:"value"`
	CommittedAt time.Time `json:"committedAt"`
	// Source is where the value came from ("tui", "compose").
	Source string `json:"source,omitempty"`
}

// DateTime splits a value the way pickers display it.
// Time is nil for date-only values.
type DateTime struct {
	Date string  `json:"date"`           // YYYY-MM-DD
	Time *string `json:"time,omitempty"` // HH:MM
}

func DateTimeOf(t time.Time) DateTime {
	hm := t.Format("15:04")
	return DateTime{Date: t.Format("2006-01-02"), Time: &hm}
}
