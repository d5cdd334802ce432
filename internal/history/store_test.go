package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"subgrid/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAssignsIDAndTimestamp(t *testing.T) {
	store := openStore(t)

	rec, err := store.Add(context.Background(), history.Record{
		SRTPath:       "/in/talk.srt",
		MediaPath:     "/in/talk.wav",
		TextGridPath:  "/out/talk.TextGrid",
		MediaDuration: 61.5,
		SpeakerCount:  1,
		IntervalCount: 5,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected timestamp")
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Add(ctx, history.Record{
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			SRTPath:      "/in/a.srt",
			MediaPath:    "/in/a.wav",
			TextGridPath: "/out/a.TextGrid",
		})
		if err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}

	records, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[0].CreatedAt.After(records[1].CreatedAt) {
		t.Fatalf("records not newest-first: %v then %v", records[0].CreatedAt, records[1].CreatedAt)
	}
}

func TestRoundTripPreservesFields(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	in := history.Record{
		SRTPath:        "/in/b.srt",
		MediaPath:      "/in/b.flac",
		TextGridPath:   "/out/b.TextGrid",
		CSVPath:        "/out/b.csv",
		MediaDuration:  120.25,
		Diarize:        true,
		ConvertNumbers: true,
		SpeakerCount:   2,
		IntervalCount:  40,
		ChangeCount:    7,
	}
	if _, err := store.Add(ctx, in); err != nil {
		t.Fatalf("Add: %v", err)
	}

	records, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	got := records[0]
	if got.SRTPath != in.SRTPath || got.CSVPath != in.CSVPath {
		t.Fatalf("paths lost: %#v", got)
	}
	if got.MediaDuration != in.MediaDuration {
		t.Fatalf("duration lost: %v", got.MediaDuration)
	}
	if !got.Diarize || !got.ConvertNumbers {
		t.Fatalf("flags lost: %#v", got)
	}
	if got.SpeakerCount != 2 || got.IntervalCount != 40 || got.ChangeCount != 7 {
		t.Fatalf("counts lost: %#v", got)
	}
}
