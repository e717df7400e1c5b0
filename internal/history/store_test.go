package history

import (
	"context"
	"path/filepath"
	"testing"

	"videofix/internal/validation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := Entry{
		RunID:      "run-1",
		Path:       "/media/old.avi",
		Target:     "standard",
		Container:  "avi",
		VideoCodec: "mpeg4",
		AudioCodec: "mp3",
		PixFmt:     "yuv420p",
		Validation: validation.Validation{PixFmtOkay: true},
		Remediated: true,
	}
	second := Entry{
		RunID:      "run-1",
		Path:       "/media/new.mkv",
		Target:     "standard",
		Container:  "matroska",
		VideoCodec: "h264",
		AudioCodec: "aac",
		PixFmt:     "yuv420p",
		Validation: validation.Validation{ContainerOkay: true, VideoOkay: true, AudioOkay: true, PixFmtOkay: true},
	}

	if err := store.Add(ctx, first); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add(ctx, second); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Path != "/media/new.mkv" {
		t.Errorf("entries[0].Path = %q, want the most recent scan", entries[0].Path)
	}
	if !entries[0].Validation.IsValid() {
		t.Error("entries[0] should round-trip as valid")
	}
	if entries[1].Validation.IsValid() {
		t.Error("entries[1] should round-trip as invalid")
	}
	if !entries[1].Remediated {
		t.Error("entries[1].Remediated should round-trip as true")
	}
	if entries[1].VideoCodec != "mpeg4" || entries[1].Container != "avi" {
		t.Errorf("entries[1] fields did not round-trip: %+v", entries[1])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on read")
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Add(ctx, Entry{RunID: "run", Path: "/media/a.mkv", Target: "t"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	entries, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Add(ctx, Entry{RunID: "run", Path: "/media/a.mkv", Target: "t"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	deleted, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if deleted != 3 {
		t.Errorf("Clear() = %d, want 3", deleted)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d after clear, want 0", len(entries))
	}
}

func TestCloseNil(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil store = %v, want nil", err)
	}
}
