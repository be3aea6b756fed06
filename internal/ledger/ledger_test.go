package ledger

import (
	"context"
	"testing"
	"time"

	"flowline/internal/outputs"
)

func TestRecordAndList(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	recs := []outputs.ArtifactRecord{
		{RunID: "run-1", StepID: "00", Name: "manifest", Path: "/d/00_manifest.json", SizeBytes: 10, Duration: 5 * time.Millisecond},
		{RunID: "run-1", StepID: "01", Name: "summary_plot", Path: "/d/01_summary_plot.png", SizeBytes: 2048, Duration: 120 * time.Millisecond},
	}
	for _, rec := range recs {
		if err := store.RecordArtifact(rec); err != nil {
			t.Fatal(err)
		}
	}

	artifacts, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(artifacts))
	}
	// Newest first.
	if artifacts[0].Name != "summary_plot" {
		t.Fatalf("first artifact = %q", artifacts[0].Name)
	}
	if artifacts[0].SizeBytes != 2048 {
		t.Fatalf("size = %d", artifacts[0].SizeBytes)
	}
	if artifacts[0].Duration != 120*time.Millisecond {
		t.Fatalf("duration = %v", artifacts[0].Duration)
	}
	if artifacts[0].CreatedAt.IsZero() {
		t.Fatal("created_at not recorded")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordArtifact(outputs.ArtifactRecord{RunID: "r", StepID: "00", Name: "x", Path: "/x"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	artifacts, err := reopened.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 1 {
		t.Fatalf("expected persisted artifact, got %d", len(artifacts))
	}
}
