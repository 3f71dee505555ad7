package stats

import (
	"sync"
	"time"
)

// ReportGate spaces out collector flushes so reports appear at most once per
// interval.
type ReportGate struct {
	once     sync.Once
	lastTs   time.Time
	interval time.Duration
}

func NewReportGate(interval time.Duration) ReportGate {
	return ReportGate{
		interval: interval,
		lastTs:   time.Time{},
	}
}

// Ready reports whether a full interval has passed since the last Mark. The
// first call starts the clock.
func (g *ReportGate) Ready() bool {
	g.once.Do(func() {
		g.lastTs = time.Now()
	})
	return time.Since(g.lastTs) >= g.interval
}

// Mark closes the current interval and returns its length.
func (g *ReportGate) Mark() time.Duration {
	d := time.Since(g.lastTs)
	g.lastTs = time.Now()
	return d
}
