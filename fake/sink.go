// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the sink interface.

package fake

import (
	"sync"

	"github.com/momentics/wsframe/api"
)

// Sink records every emission for later assertions. Completions fire
// synchronously inside Emit, the way a zero-latency transport would,
// which makes it the right harness for the encoder's reentrancy
// contract.
type Sink struct {
	mu       sync.Mutex
	regions  [][]byte
	withDone []bool
	emitErr  error

	// OnEmit, when set, runs synchronously inside Emit after the region
	// has been recorded and before the completion fires. Tests use it to
	// model a transport callback that re-enters the encoder.
	OnEmit func(region []byte)
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit implements api.Sink. The region is copied before recording.
func (s *Sink) Emit(region []byte, done api.Completion) {
	s.mu.Lock()
	buf := make([]byte, len(region))
	copy(buf, region)
	s.regions = append(s.regions, buf)
	s.withDone = append(s.withDone, done != nil)
	cb := s.OnEmit
	err := s.emitErr
	s.mu.Unlock()

	if cb != nil {
		cb(buf)
	}
	if done != nil {
		done(err)
	}
}

// SetEmitError makes every subsequent completion report err.
func (s *Sink) SetEmitError(err error) {
	s.mu.Lock()
	s.emitErr = err
	s.mu.Unlock()
}

// Regions returns copies of all recorded regions in emission order.
func (s *Sink) Regions() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.regions))
	for i, r := range s.regions {
		out[i] = make([]byte, len(r))
		copy(out[i], r)
	}
	return out
}

// Bytes returns the concatenation of all regions: the wire image.
func (s *Sink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []byte
	for _, r := range s.regions {
		out = append(out, r...)
	}
	return out
}

// Completions reports, per region, whether a completion was attached.
func (s *Sink) Completions() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bool(nil), s.withDone...)
}

// Reset clears all recorded emissions.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.regions = s.regions[:0]
	s.withDone = s.withDone[:0]
	s.mu.Unlock()
}
