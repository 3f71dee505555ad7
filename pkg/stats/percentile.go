package stats

import (
	"auto-timer/pkg/debug"

	"golang.org/x/exp/constraints"
)

// POf returns the percent-th percentile of sorted (nearest-rank, percent in
// (0, 1]). The slice must be non-empty and already sorted.
func POf[E constraints.Ordered](sorted []E, percent float64) E {
	debug.Assert(len(sorted) > 0, "POf on empty slice")
	idx := int(float64(len(sorted))*percent+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
