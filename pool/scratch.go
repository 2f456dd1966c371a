// File: pool/scratch.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// ScratchSize covers the largest possible frame header: 1 first byte,
// 1 length marker, up to 8 length-extension bytes and a 4-byte mask key.
const ScratchSize = 14

var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, ScratchSize)
		return &b
	},
}

// GetScratch returns an empty header scratch buffer with capacity at
// least ScratchSize.
func GetScratch() []byte {
	return (*scratchPool.Get().(*[]byte))[:0]
}

// PutScratch returns a scratch buffer to the pool. Undersized buffers are
// dropped rather than recycled.
func PutScratch(b []byte) {
	if cap(b) < ScratchSize {
		return
	}
	b = b[:0]
	scratchPool.Put(&b)
}
