package timer

import (
	"fmt"
	"time"

	"auto-timer/pkg/debug"

	"github.com/rs/zerolog/log"
)

// AutoTimer times a block of code, reporting a message plus the elapsed time
// on every checkpoint and once more on Stop. For example:
//
//	t := timer.New("Foo() completed")
//	defer t.Stop()
//	doWork()
//	t.Log("do work finished")
//	doMoreWork()
//
// prints something like:
//
//	do work finished in 1.2s
//	Foo() completed in 4.3s
//
// Each checkpoint measures from the previous one, so consecutive calls report
// disjoint intervals. The logger and the clock are injectable; the default
// logger drops empty messages, so a messageless timer can be used purely for
// measuring:
//
//	t := timer.New("")
//	doWork()
//	howLong := t.Log("")
//
// An AutoTimer belongs to a single scope. It must not be copied; hand the
// pointer around instead (go vet flags value copies).
type AutoTimer struct {
	noCopy noCopy

	destructionMessage string
	start              time.Time
	minTimeToLog       float64
	logger             Logger
	clock              Clock
	stopped            bool
}

// New returns a running timer that reports msg through the pretty default
// logger when it stops.
func New(msg string) *AutoTimer {
	return NewWithLogger(msg, 0, DefaultLogger(PRETTY))
}

// NewWithLogger adds a reporting threshold: checkpoints shorter than
// minTimeToLog seconds are measured but not handed to the logger.
func NewWithLogger(msg string, minTimeToLog float64, logger Logger) *AutoTimer {
	return NewWithClock(msg, minTimeToLog, logger, SystemClock)
}

// NewWithClock runs the timer against a caller-supplied clock.
func NewWithClock(msg string, minTimeToLog float64, logger Logger, clock Clock) *AutoTimer {
	debug.Assert(logger != nil, "AutoTimer needs a logger")
	debug.Assert(clock != nil, "AutoTimer needs a clock")
	return &AutoTimer{
		destructionMessage: msg,
		start:              clock.Now(),
		minTimeToLog:       minTimeToLog,
		logger:             logger,
		clock:              clock,
	}
}

// Log reports the time elapsed since the last checkpoint (or construction)
// and starts the next interval. The logger fires only when the elapsed
// seconds reach the threshold; the measurement is returned either way.
func (t *AutoTimer) Log(msg string) float64 {
	return t.logImpl(t.clock.Now(), msg)
}

// LogArgs builds the message by concatenating args like fmt.Sprint. The
// current instant is captured before any argument is rendered, so a slow
// String method is not charged to the measured interval.
func (t *AutoTimer) LogArgs(args ...interface{}) float64 {
	now := t.clock.Now()
	return t.logImpl(now, fmt.Sprint(args...))
}

// Logf builds the message with fmt.Sprintf, with the same capture discipline
// as LogArgs.
func (t *AutoTimer) Logf(format string, args ...interface{}) float64 {
	now := t.clock.Now()
	return t.logImpl(now, fmt.Sprintf(format, args...))
}

// Stop performs the final checkpoint with the destruction message. It runs at
// most once; later calls return 0 without logging. A panic escaping the
// logger is reported through the zerolog error channel and suppressed, so a
// deferred Stop cannot abort an already-unwinding scope.
func (t *AutoTimer) Stop() (sec float64) {
	if t.stopped {
		return 0
	}
	t.stopped = true
	sec = t.clock.Now().Sub(t.start).Seconds()
	defer func() {
		t.start = t.clock.Now()
		if r := recover(); r != nil {
			log.Error().Msgf("timer %q: logger panicked on stop: %v", t.destructionMessage, r)
		}
	}()
	if sec >= t.minTimeToLog {
		t.logger(t.destructionMessage, sec)
	}
	return sec
}

// The baseline resets only after the logger returns, so logging latency stays
// out of the next interval. now is captured by the caller so message
// formatting stays out of the current one.
func (t *AutoTimer) logImpl(now time.Time, msg string) float64 {
	duration := now.Sub(t.start).Seconds()
	if duration >= t.minTimeToLog {
		t.logger(msg, duration)
	}
	t.start = t.clock.Now()
	return duration
}

// Measure runs fn under a timer, guaranteeing the final checkpoint on every
// exit path including panics.
func Measure(msg string, fn func()) {
	t := New(msg)
	defer t.Stop()
	fn()
}

// noCopy trips go vet's copylocks check when an AutoTimer is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
