//go:build !linux

// File: adapters/vector_sink_stub.go
// Author: momentics <momentics@gmail.com>

package adapters

import "github.com/momentics/wsframe/api"

// VectorSink requires writev support; on non-Linux platforms every flush
// fails with api.ErrNotSupported.
type VectorSink struct {
	dones []api.Completion
}

// NewVectorSink returns a stub sink for the given descriptor.
func NewVectorSink(fd int) *VectorSink {
	return &VectorSink{}
}

// Emit implements api.Sink.
func (s *VectorSink) Emit(region []byte, done api.Completion) {
	if done != nil {
		s.dones = append(s.dones, done)
	}
}

// Flush fails with api.ErrNotSupported on this platform.
func (s *VectorSink) Flush() error {
	dones := s.dones
	s.dones = s.dones[:0]
	for _, done := range dones {
		done(api.ErrNotSupported)
	}
	return api.ErrNotSupported
}
