package stats

import "testing"

func TestShouldComputeNearestRankPercentiles(t *testing.T) {
	sorted := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	if got := POf(sorted, 0.5); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := POf(sorted, 0.9); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
	if got := POf(sorted, 0.99); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := POf(sorted, 1.0); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestShouldHandleSingleSamplePercentile(t *testing.T) {
	single := []float64{3.5}
	if got := POf(single, 0.5); got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
	if got := POf(single, 0.99); got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
}
