package stats

import (
	"time"

	"auto-timer/pkg/debug"
)

// Warmup fences off an initial warmup period so the first measurements of a
// benchmark run can be excluded from the collected samples.
type Warmup struct {
	initial     time.Time
	warmedStart time.Time
	warmupTime  time.Duration
	warmed      bool
}

func NewWarmupChecker(warmupTime time.Duration) Warmup {
	warmed := false
	if warmupTime == 0 {
		warmed = true
	}
	return Warmup{
		warmupTime: warmupTime,
		warmed:     warmed,
	}
}

func (w *Warmup) StartWarmup() {
	w.initial = time.Now()
	if w.warmed {
		w.warmedStart = w.initial
	}
}

// Check flips the warmed flag once the warmup period has passed.
func (w *Warmup) Check() {
	if !w.warmed && time.Since(w.initial) >= w.warmupTime {
		w.warmed = true
		w.warmedStart = time.Now()
	}
}

func (w *Warmup) AfterWarmup() bool {
	return w.warmed
}

func (w *Warmup) ElapsedAfterWarmup() time.Duration {
	return time.Since(w.warmedStart)
}

func (w *Warmup) ElapsedSinceInitial() time.Duration {
	debug.Assert(!w.initial.IsZero(), "warmup not started")
	return time.Since(w.initial)
}
