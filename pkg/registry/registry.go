package registry

import (
	"fmt"
	"io"

	"auto-timer/pkg/timer"

	"github.com/zhangyunhao116/skipmap"
)

// Registry aggregates checkpoint measurements under string labels so that
// repeated scopes (one timer per run) roll up into per-label counts, totals
// and extrema. Labels report in sorted order. Safe for concurrent use.
type Registry struct {
	labels *skipmap.FuncMap[string, *LabelStats]
}

func New() *Registry {
	return &Registry{
		labels: skipmap.NewFunc[string, *LabelStats](func(a, b string) bool {
			return a < b
		}),
	}
}

// Observe records a measurement of sec seconds under label.
func (r *Registry) Observe(label string, sec float64) {
	ls, ok := r.labels.Load(label)
	if !ok {
		ls, _ = r.labels.LoadOrStore(label, newLabelStats())
	}
	ls.observe(sec)
}

// Logger returns a checkpoint sink recording every duration under label. The
// message is dropped; the label is the identity here.
func (r *Registry) Logger(label string) timer.Logger {
	return func(msg string, sec float64) {
		r.Observe(label, sec)
	}
}

// Timer starts an AutoTimer whose checkpoints feed this registry:
//
//	defer reg.Timer("ingest", "ingest done").Stop()
func (r *Registry) Timer(label string, msg string) *timer.AutoTimer {
	return timer.NewWithLogger(msg, 0, r.Logger(label))
}

// Snapshot returns the current aggregate for label.
func (r *Registry) Snapshot(label string) (LabelSnapshot, bool) {
	ls, ok := r.labels.Load(label)
	if !ok {
		return LabelSnapshot{}, false
	}
	return ls.snapshot(label), true
}

func (r *Registry) Len() int {
	return r.labels.Len()
}

// DumpTo writes one summary line per label, in label order.
func (r *Registry) DumpTo(w io.Writer) {
	r.labels.Range(func(label string, ls *LabelStats) bool {
		snap := ls.snapshot(label)
		fmt.Fprintf(w, "%s: count=%d, total=%s, mean=%s, min=%s, max=%s\n",
			snap.Label, snap.Count,
			timer.PrettyDuration(snap.Total), timer.PrettyDuration(snap.Mean()),
			timer.PrettyDuration(snap.Min), timer.PrettyDuration(snap.Max))
		return true
	})
}

// Reset drops every label.
func (r *Registry) Reset() {
	var stale []string
	r.labels.Range(func(label string, ls *LabelStats) bool {
		stale = append(stale, label)
		return true
	})
	for _, label := range stale {
		r.labels.Delete(label)
	}
}
