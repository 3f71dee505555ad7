//go:build deadlock
// +build deadlock

package syncutils

import "github.com/sasha-s/go-deadlock"

// Deadlock-detecting mutexes for debugging lock ordering in the collectors
// and the registry. Same zero-value semantics as the sync variants.
type Mutex struct {
	deadlock.Mutex
}

type RWMutex struct {
	deadlock.RWMutex
}
