package stats

import (
	"strings"
	"testing"
)

func TestShouldEvictOldestBeyondCapacity(t *testing.T) {
	w := NewWindowedCollector("recent", 3)
	for i := 1; i <= 5; i++ {
		w.AddSample(float64(i))
	}
	if w.Len() != 3 {
		t.Fatalf("expected 3, got %d", w.Len())
	}
	snap := w.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("expected 3 samples, got %d", snap.Count)
	}
	if snap.Min != 3 || snap.Max != 5 {
		t.Fatalf("expected the window to hold [3,5], got %+v", snap)
	}
}

func TestShouldSnapshotWithoutDraining(t *testing.T) {
	w := NewWindowedCollector("recent", 8)
	w.AddSample(0.5)
	w.AddSample(0.1)
	w.AddSample(0.9)
	snap := w.Snapshot()
	if snap.P50 != 0.5 {
		t.Fatalf("expected p50=0.5, got %v", snap.P50)
	}
	if w.Len() != 3 {
		t.Fatalf("snapshot should not drain, got %d", w.Len())
	}
	if second := w.Snapshot(); second != snap {
		t.Fatalf("snapshot should be repeatable, got %+v vs %+v", second, snap)
	}
}

func TestShouldSnapshotEmptyWindow(t *testing.T) {
	w := NewWindowedCollector("recent", 2)
	snap := w.Snapshot()
	if snap.Count != 0 || snap.Tag != "recent" {
		t.Fatalf("unexpected empty snapshot: %+v", snap)
	}
}

func TestShouldFeedWindowFromLogger(t *testing.T) {
	w := NewWindowedCollector("recent", 4)
	logger := w.Logger()
	logger("ignored", 0.25)
	logger("ignored", 0.75)
	if w.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", w.Len())
	}
	s := w.Snapshot().String()
	if !strings.Contains(s, "recent window (2 samples)") {
		t.Fatalf("unexpected snapshot string: %s", s)
	}
}
