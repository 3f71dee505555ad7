package registry

import (
	"auto-timer/pkg/utils/syncutils"
)

// LabelStats aggregates every measurement observed under one label.
type LabelStats struct {
	mu    syncutils.Mutex
	count uint64
	total float64
	min   float64
	max   float64
	last  float64
}

func newLabelStats() *LabelStats {
	return &LabelStats{}
}

func (s *LabelStats) observe(sec float64) {
	s.mu.Lock()
	if s.count == 0 || sec < s.min {
		s.min = sec
	}
	if s.count == 0 || sec > s.max {
		s.max = sec
	}
	s.count++
	s.total += sec
	s.last = sec
	s.mu.Unlock()
}

func (s *LabelStats) snapshot(label string) LabelSnapshot {
	s.mu.Lock()
	snap := LabelSnapshot{
		Label: label,
		Count: s.count,
		Total: s.total,
		Min:   s.min,
		Max:   s.max,
		Last:  s.last,
	}
	s.mu.Unlock()
	return snap
}

// LabelSnapshot is a point-in-time copy of one label's aggregate, in seconds.
type LabelSnapshot struct {
	Label string
	Count uint64
	Total float64
	Min   float64
	Max   float64
	Last  float64
}

func (s LabelSnapshot) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total / float64(s.Count)
}
