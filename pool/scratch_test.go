package pool_test

import (
	"testing"

	"github.com/momentics/wsframe/pool"
)

func TestScratchLifecycle(t *testing.T) {
	b := pool.GetScratch()
	if len(b) != 0 {
		t.Errorf("fresh scratch has len %d, want 0", len(b))
	}
	if cap(b) < pool.ScratchSize {
		t.Errorf("scratch capacity %d below %d", cap(b), pool.ScratchSize)
	}

	b = append(b, 0x81, 0x02, 0xFF)
	pool.PutScratch(b)

	b2 := pool.GetScratch()
	if len(b2) != 0 {
		t.Error("recycled scratch not empty")
	}
}

func TestPutScratchUndersized(t *testing.T) {
	// Undersized buffers must not poison the pool.
	pool.PutScratch(make([]byte, 4))

	b := pool.GetScratch()
	if cap(b) < pool.ScratchSize {
		t.Errorf("pool handed out undersized scratch: cap %d", cap(b))
	}
}
