package stats

import (
	"fmt"
	"io"
	"os"
	"time"

	"auto-timer/pkg/utils/syncutils"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

const (
	DEFAULT_MIN_REPORT_SAMPLES = 200
	DEFAULT_REPORT_INTERVAL    = time.Duration(10) * time.Second
)

// Collector accumulates checkpoint measurements under a tag and prints
// percentile summaries once enough samples have arrived and the report gate
// opens. Durations fed by a timer.Logger are float64 seconds; any ordered
// sample type works.
type Collector[E constraints.Ordered] struct {
	tag              string
	data             []E
	gate             ReportGate
	minReportSamples uint32
	out              io.Writer
}

func NewCollector[E constraints.Ordered](tag string, reportInterval time.Duration) Collector[E] {
	return Collector[E]{
		tag:              tag,
		data:             make([]E, 0, 128),
		gate:             NewReportGate(reportInterval),
		minReportSamples: DEFAULT_MIN_REPORT_SAMPLES,
		out:              os.Stderr,
	}
}

// SetMinReportSamples lowers or raises the sample floor for a flush.
func (c *Collector[E]) SetMinReportSamples(n uint32) {
	c.minReportSamples = n
}

// SetOutput redirects flush reports away from stderr.
func (c *Collector[E]) SetOutput(w io.Writer) {
	c.out = w
}

func (c *Collector[E]) AddSample(sample E) {
	c.data = append(c.data, sample)
	if uint32(len(c.data)) >= c.minReportSamples && c.gate.Ready() {
		c.flush()
	}
}

func (c *Collector[E]) Len() int {
	return len(c.data)
}

// PrintRemainingStats flushes whatever is buffered regardless of the sample
// floor; call it once measuring is over.
func (c *Collector[E]) PrintRemainingStats() {
	if len(c.data) > 0 {
		c.flush()
	}
}

func (c *Collector[E]) flush() {
	slices.Sort(c.data)
	p50 := POf(c.data, 0.5)
	p90 := POf(c.data, 0.9)
	p99 := POf(c.data, 0.99)
	dur := c.gate.Mark()
	fmt.Fprintf(c.out, "%s stats (%d samples): dur=%v, p50=%v, p90=%v, p99=%v\n",
		c.tag, len(c.data), dur, p50, p90, p99)
	c.data = make([]E, 0, cap(c.data))
}

// ConcurrentCollector wraps a Collector for use from multiple goroutines,
// e.g. as the shared sink behind several timers.
type ConcurrentCollector[E constraints.Ordered] struct {
	mu syncutils.Mutex
	Collector[E]
}

func NewConcurrentCollector[E constraints.Ordered](tag string, reportInterval time.Duration) *ConcurrentCollector[E] {
	return &ConcurrentCollector[E]{
		Collector: NewCollector[E](tag, reportInterval),
	}
}

func (c *ConcurrentCollector[E]) AddSample(sample E) {
	c.mu.Lock()
	c.Collector.AddSample(sample)
	c.mu.Unlock()
}

func (c *ConcurrentCollector[E]) Len() int {
	c.mu.Lock()
	n := c.Collector.Len()
	c.mu.Unlock()
	return n
}

func (c *ConcurrentCollector[E]) PrintRemainingStats() {
	c.mu.Lock()
	c.Collector.PrintRemainingStats()
	c.mu.Unlock()
}

// SecondsLogger adapts a concurrent collector of float64 seconds into a
// checkpoint sink that several timers can share.
func SecondsLogger(c *ConcurrentCollector[float64]) func(msg string, sec float64) {
	return func(msg string, sec float64) {
		c.AddSample(sec)
	}
}
