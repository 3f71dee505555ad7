package stats

import (
	"fmt"
	"io"
	"os"
	"time"
)

// RateCounter tracks how often a scope runs, printing the rate over each
// report interval. One instance per goroutine; it does no locking.
type RateCounter struct {
	tag       string
	count     uint64
	lastCount uint64
	gate      ReportGate
	out       io.Writer
}

func NewRateCounter(tag string, reportInterval time.Duration) RateCounter {
	return RateCounter{
		tag:  tag,
		gate: NewReportGate(reportInterval),
		out:  os.Stderr,
	}
}

func (c *RateCounter) SetOutput(w io.Writer) {
	c.out = w
}

// Tick records n runs and prints the interval rate when the gate opens.
func (c *RateCounter) Tick(n uint32) {
	c.count += uint64(n)
	if c.gate.Ready() {
		dur := c.gate.Mark()
		delta := c.count - c.lastCount
		fmt.Fprintf(c.out, "%s rate: %v per second (%d in %v)\n",
			c.tag, float64(delta)/dur.Seconds(), delta, dur)
		c.lastCount = c.count
	}
}

func (c *RateCounter) GetCount() uint64 {
	return c.count
}
