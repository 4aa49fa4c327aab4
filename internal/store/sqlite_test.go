package store

import (
	"context"
	"testing"
	"time"

	"datetime-picker/internal/model"
)

func TestSQLite_LastCommittedEmpty(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	_, ok, err := s.LastCommitted(context.Background(), "due")
	if err != nil {
		t.Fatalf("LastCommitted: %v", err)
	}
	if ok {
		t.Fatalf("expected no committed value")
	}
}

func TestSQLite_SaveCommitRoundTripKeepsOffset(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	loc := time.FixedZone("UTC+2", 2*3600)
	v := time.Date(2023, 6, 2, 14, 30, 17, 500, loc)

	p, err := s.SaveCommit(ctx, "due", v, "tui")
	if err != nil {
		t.Fatalf("SaveCommit: %v", err)
	}
	if p.Slot != "due" || p.Source != "tui" || p.ID == "" {
		t.Fatalf("unexpected pick: %+v", p)
	}

	got, ok, err := s.LastCommitted(ctx, "due")
	if err != nil || !ok {
		t.Fatalf("LastCommitted: ok=%v err=%v", ok, err)
	}
	if !got.Equal(v) {
		t.Fatalf("expected %s, got %s", v, got)
	}
	if _, off := got.Zone(); off != 2*3600 {
		t.Fatalf("expected +02:00 offset, got %d", off)
	}
}

func TestSQLite_EmptySlotUsesDefault(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	v := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := s.SaveCommit(ctx, "  ", v, "compose"); err != nil {
		t.Fatalf("SaveCommit: %v", err)
	}
	got, ok, err := s.LastCommitted(ctx, model.DefaultSlot)
	if err != nil || !ok || !got.Equal(v) {
		t.Fatalf("expected default slot value %s, got %s ok=%v err=%v", v, got, ok, err)
	}
}

func TestSQLite_HistoryAndSlots(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	base := time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := s.SaveCommit(ctx, "due", base.AddDate(0, 0, i), "tui"); err != nil {
			t.Fatalf("SaveCommit(due %d): %v", i, err)
		}
	}
	if _, err := s.SaveCommit(ctx, "alarm", base, "compose"); err != nil {
		t.Fatalf("SaveCommit(alarm): %v", err)
	}

	hist, err := s.History(ctx, "due", 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(hist))
	}
	if !hist[0].Value.Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("expected newest first, got %s", hist[0].Value)
	}

	all, err := s.History(ctx, "", 0)
	if err != nil {
		t.Fatalf("History(all): %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 picks, got %d", len(all))
	}

	slots, err := s.Slots(ctx)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(slots) != 2 || slots[0].Name != "alarm" || slots[1].Name != "due" {
		t.Fatalf("unexpected slots: %+v", slots)
	}
	if !slots[1].Value.Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("expected last committed due value, got %s", slots[1].Value)
	}
}
