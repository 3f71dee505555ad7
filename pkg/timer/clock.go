package timer

import "time"

// Clock supplies the current instant. Subtracting two instants from the same
// clock yields the measured interval.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default clock. time.Now carries a monotonic reading, so
// intervals are immune to wall-clock adjustments.
var SystemClock Clock = systemClock{}
