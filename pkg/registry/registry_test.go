package registry

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldAggregatePerLabel(t *testing.T) {
	r := New()
	r.Observe("load", 2.0)
	r.Observe("load", 1.0)
	r.Observe("load", 3.0)
	r.Observe("flush", 0.5)

	snap, ok := r.Snapshot("load")
	assert.True(t, ok)
	assert.Equal(t, uint64(3), snap.Count)
	assert.Equal(t, 6.0, snap.Total)
	assert.Equal(t, 1.0, snap.Min)
	assert.Equal(t, 3.0, snap.Max)
	assert.Equal(t, 3.0, snap.Last)
	assert.Equal(t, 2.0, snap.Mean())

	_, ok = r.Snapshot("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestShouldFeedRegistryFromTimer(t *testing.T) {
	r := New()
	tm := r.Timer("job", "job done")
	tm.Log("halfway")
	tm.Stop()

	snap, ok := r.Snapshot("job")
	assert.True(t, ok)
	assert.Equal(t, uint64(2), snap.Count)
}

func TestShouldShareLoggerAcrossGoroutines(t *testing.T) {
	r := New()
	logger := r.Logger("spin")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				logger("", 0.001)
			}
		}()
	}
	wg.Wait()

	snap, ok := r.Snapshot("spin")
	assert.True(t, ok)
	assert.Equal(t, uint64(4000), snap.Count)
	assert.Equal(t, 0.001, snap.Min)
	assert.Equal(t, 0.001, snap.Max)
}

func TestShouldDumpLabelsInOrder(t *testing.T) {
	r := New()
	r.Observe("zeta", 1.0)
	r.Observe("alpha", 0.5)
	r.Observe("mid", 2.0)

	var buf bytes.Buffer
	r.DumpTo(&buf)
	out := buf.String()
	ia := strings.Index(out, "alpha:")
	im := strings.Index(out, "mid:")
	iz := strings.Index(out, "zeta:")
	if ia < 0 || im < 0 || iz < 0 {
		t.Fatalf("missing labels in dump: %s", out)
	}
	if !(ia < im && im < iz) {
		t.Fatalf("labels not sorted: %s", out)
	}
	if !strings.Contains(out, "alpha: count=1, total=500ms") {
		t.Fatalf("unexpected alpha line: %s", out)
	}
}

func TestShouldResetLabels(t *testing.T) {
	r := New()
	r.Observe("load", 1.0)
	r.Observe("flush", 1.0)
	assert.Equal(t, 2, r.Len())
	r.Reset()
	assert.Equal(t, 0, r.Len())
	_, ok := r.Snapshot("load")
	assert.False(t, ok)
}
