//go:build !deadlock
// +build !deadlock

package syncutils

import "sync"

// Mutex is a plain sync.Mutex; build with -tags deadlock to swap in the
// deadlock-detecting variant.
type Mutex struct {
	sync.Mutex
}

type RWMutex struct {
	sync.RWMutex
}
