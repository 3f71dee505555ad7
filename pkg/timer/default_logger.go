package timer

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Logger consumes a checkpoint message together with the measured seconds.
// Stateful sinks hand in a closure or a bound method.
type Logger func(msg string, sec float64)

type LogStyle uint8

const (
	SECONDS LogStyle = 0
	PRETTY  LogStyle = 1
)

// DefaultLogger returns a Logger writing one info line through the global
// zerolog logger. An empty message emits nothing, so a timer without a
// message can be used purely for measuring.
//
// SECONDS renders "<msg> in <sec> seconds"; PRETTY renders the interval with
// unit-choosing precision, e.g. "150ms" or "1m30s".
func DefaultLogger(style LogStyle) Logger {
	return func(msg string, sec float64) {
		if msg == "" {
			return
		}
		if style == PRETTY {
			log.Info().Msgf("%s in %s", msg, PrettyDuration(sec))
		} else {
			log.Info().Msgf("%s in %v seconds", msg, sec)
		}
	}
}

// PrettyDuration renders sec the way time.Duration prints itself; the result
// parses back with time.ParseDuration.
func PrettyDuration(sec float64) string {
	return time.Duration(sec * float64(time.Second)).String()
}
