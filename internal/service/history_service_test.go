package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"poke_explorer/internal/models"
)

func TestHistoryService_Record(t *testing.T) {
	h := &memHistory{}
	svc := NewHistoryService(h)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	svc.now = func() time.Time { return fixed }

	e, err := svc.Record(context.Background(), "u1", "  PikaChu ")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if e.Term != "pikachu" || e.UserID != "u1" || e.ID == "" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !e.Timestamp.Equal(fixed) || e.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp should be the clock reading in UTC, got %v", e.Timestamp)
	}
	if len(h.entries) != 1 || h.entries[0] != e {
		t.Fatalf("entry not persisted: %+v", h.entries)
	}
}

func TestHistoryService_Record_StoreError(t *testing.T) {
	svc := NewHistoryService(&memHistory{appendErr: errors.New("boom")})

	_, err := svc.Record(context.Background(), "u1", "pikachu")
	kindOf(t, err, ErrInfra)
}

func TestHistoryService_RecentFor(t *testing.T) {
	h := &memHistory{}
	svc := NewHistoryService(h)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := svc.Record(ctx, "u1", fmt.Sprintf("term%d", i)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if _, err := svc.Record(ctx, "u2", "mew"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := svc.RecentFor(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("RecentFor: %v", err)
	}
	if len(got) != models.MaxHistoryEntries {
		t.Fatalf("expected %d entries, got %d", models.MaxHistoryEntries, len(got))
	}
	if got[0].Term != "term24" || got[19].Term != "term5" {
		t.Fatalf("wrong order: first=%q last=%q", got[0].Term, got[19].Term)
	}
	for _, e := range got {
		if e.UserID != "u1" {
			t.Fatalf("leaked entry from %q", e.UserID)
		}
	}

	got, err = svc.RecentFor(ctx, "u1", 3)
	if err != nil || len(got) != 3 {
		t.Fatalf("RecentFor(3) = %d entries, %v", len(got), err)
	}

	// above the cap is clamped
	got, err = svc.RecentFor(ctx, "u1", 100)
	if err != nil || len(got) != models.MaxHistoryEntries {
		t.Fatalf("RecentFor(100) = %d entries, %v", len(got), err)
	}
	if h.lastLimit != models.MaxHistoryEntries {
		t.Fatalf("store asked for %d entries, want %d", h.lastLimit, models.MaxHistoryEntries)
	}
}

func TestHistoryService_RecentFor_EmptyIsNotNil(t *testing.T) {
	svc := NewHistoryService(&memHistory{})

	got, err := svc.RecentFor(context.Background(), "nobody", 20)
	if err != nil {
		t.Fatalf("RecentFor: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestHistoryService_RecentFor_StoreError(t *testing.T) {
	svc := NewHistoryService(&memHistory{listErr: errors.New("boom")})

	_, err := svc.RecentFor(context.Background(), "u1", 20)
	kindOf(t, err, ErrInfra)
}
