package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sidesplit/internal/encoder"
	"sidesplit/internal/splitter"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveReportAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	report := splitter.Report{
		BatchID: "batch-1",
		Total:   2,
		Results: []splitter.Result{
			{
				Input:       "/videos/a.mp4",
				LeftOutput:  "/videos/a-left.mp4",
				RightOutput: "/videos/a-right.mp4",
				LeftSize:    100,
				RightSize:   120,
				Elapsed:     90 * time.Second,
				Capability:  encoder.CapabilitySoftware,
			},
			{
				Input:       "/videos/b.mp4",
				LeftOutput:  "/videos/b-left.mp4",
				RightOutput: "/videos/b-right.mp4",
				LeftSize:    200,
				RightSize:   210,
				Elapsed:     45 * time.Second,
				Capability:  encoder.CapabilityNVENC,
			},
		},
	}
	if err := store.SaveReport(ctx, report); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest insertion first.
	newest := records[0]
	if newest.Input != "/videos/b.mp4" {
		t.Errorf("newest input = %q, want b.mp4 first", newest.Input)
	}
	if newest.Encoder != "h264_nvenc" {
		t.Errorf("encoder = %q, want h264_nvenc", newest.Encoder)
	}
	if newest.ElapsedSeconds != 45 {
		t.Errorf("elapsed = %v, want 45", newest.ElapsedSeconds)
	}
	if newest.BatchID != "batch-1" {
		t.Errorf("batch id = %q, want batch-1", newest.BatchID)
	}
	if newest.CreatedAt.IsZero() {
		t.Error("created_at did not round-trip")
	}
}

func TestSaveReportEmptyIsNoop(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveReport(context.Background(), splitter.Report{BatchID: "empty"}); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}
	records, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		report := splitter.Report{
			BatchID: "batch",
			Total:   1,
			Results: []splitter.Result{{Input: "/videos/a.mp4", LeftOutput: "l", RightOutput: "r"}},
		}
		if err := store.SaveReport(ctx, report); err != nil {
			t.Fatalf("SaveReport() error: %v", err)
		}
	}

	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("Open(\"\") should fail")
	}
}
