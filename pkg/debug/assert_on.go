//go:build debug
// +build debug

package debug

import (
	"fmt"
	"io"
)

// Assert will panic with msg if cond is false.
//
// msg must be a string, func() string or fmt.Stringer.
func Assert(cond bool, msg interface{}) {
	if !cond {
		panic(stringValue(msg))
	}
}

func stringValue(msg interface{}) string {
	switch m := msg.(type) {
	case string:
		return m
	case func() string:
		return m()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("%v", msg)
	}
}

// Fprintf writes trace output in debug builds only.
func Fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}
