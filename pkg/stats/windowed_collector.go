package stats

import (
	"fmt"

	"auto-timer/pkg/debug"

	"github.com/gammazero/deque"
	"golang.org/x/exp/slices"
)

// WindowedCollector keeps only the most recent checkpoint measurements, for
// rolling views of long-running scopes where old samples should stop
// influencing the percentiles.
type WindowedCollector struct {
	tag      string
	window   *deque.Deque[float64]
	capacity int
}

func NewWindowedCollector(tag string, capacity int) *WindowedCollector {
	debug.Assert(capacity > 0, "window capacity must be positive")
	return &WindowedCollector{
		tag:      tag,
		window:   deque.New[float64](),
		capacity: capacity,
	}
}

// AddSample appends sec and evicts the oldest sample once the window is full.
func (w *WindowedCollector) AddSample(sec float64) {
	if w.window.Len() >= w.capacity {
		w.window.PopFront()
	}
	w.window.PushBack(sec)
}

func (w *WindowedCollector) Len() int {
	return w.window.Len()
}

// Logger adapts the window into a checkpoint sink.
func (w *WindowedCollector) Logger() func(msg string, sec float64) {
	return func(msg string, sec float64) {
		w.AddSample(sec)
	}
}

// Snapshot summarizes the current window without draining it.
func (w *WindowedCollector) Snapshot() WindowSnapshot {
	n := w.window.Len()
	if n == 0 {
		return WindowSnapshot{Tag: w.tag}
	}
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = w.window.At(i)
	}
	slices.Sort(samples)
	return WindowSnapshot{
		Tag:   w.tag,
		Count: n,
		Min:   samples[0],
		Max:   samples[n-1],
		P50:   POf(samples, 0.5),
		P90:   POf(samples, 0.9),
		P99:   POf(samples, 0.99),
	}
}

type WindowSnapshot struct {
	Tag   string
	Count int
	Min   float64
	Max   float64
	P50   float64
	P90   float64
	P99   float64
}

func (s WindowSnapshot) String() string {
	return fmt.Sprintf("%s window (%d samples): min=%v, p50=%v, p90=%v, p99=%v, max=%v",
		s.Tag, s.Count, s.Min, s.P50, s.P90, s.P99, s.Max)
}
