// control/stats.go
// Author: momentics <momentics@gmail.com>
//
// Encode counters for system-level monitoring. Counters are atomic so a
// monitoring goroutine can read them while a connection's encoder writes.

package control

import "sync/atomic"

// Stats accumulates per-encoder (or shared) encode counters.
type Stats struct {
	frames       atomic.Int64
	maskedFrames atomic.Int64
	wireBytes    atomic.Int64
}

// CountFrame records one encoded frame and the wire bytes it produced.
func (s *Stats) CountFrame(wireBytes int, masked bool) {
	s.frames.Add(1)
	s.wireBytes.Add(int64(wireBytes))
	if masked {
		s.maskedFrames.Add(1)
	}
}

// Frames returns the number of frames encoded.
func (s *Stats) Frames() int64 { return s.frames.Load() }

// MaskedFrames returns the number of masked frames encoded.
func (s *Stats) MaskedFrames() int64 { return s.maskedFrames.Load() }

// WireBytes returns the total bytes handed to the sink.
func (s *Stats) WireBytes() int64 { return s.wireBytes.Load() }

// Snapshot returns the current counter values as a map.
func (s *Stats) Snapshot() map[string]int64 {
	return map[string]int64{
		"frames":        s.frames.Load(),
		"masked_frames": s.maskedFrames.Load(),
		"wire_bytes":    s.wireBytes.Load(),
	}
}
