//go:build linux

// File: adapters/vector_sink_linux.go
// Author: momentics <momentics@gmail.com>

package adapters

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/wsframe/api"
)

// VectorSink batches regions and hands them to the kernel in a single
// writev(2) call per Flush, so header and payload regions of one or more
// frames go out as separate iovecs without being coalesced in userspace.
type VectorSink struct {
	fd    int
	iov   [][]byte
	dones []api.Completion
	err   error
}

// NewVectorSink wraps a connected socket file descriptor.
func NewVectorSink(fd int) *VectorSink {
	return &VectorSink{fd: fd}
}

// Emit implements api.Sink. The region is copied; the kernel sees it only
// at Flush time, which may be after the encoder has reused it.
func (s *VectorSink) Emit(region []byte, done api.Completion) {
	buf := make([]byte, len(region))
	copy(buf, region)
	s.iov = append(s.iov, buf)
	if done != nil {
		s.dones = append(s.dones, done)
	}
}

// Flush submits all batched regions with one writev call and fires the
// collected completions. The first syscall error becomes sticky.
func (s *VectorSink) Flush() error {
	if s.err == nil && len(s.iov) > 0 {
		if _, err := unix.Writev(s.fd, s.iov); err != nil {
			s.err = err
		}
	}
	dones := s.dones
	s.iov = s.iov[:0]
	s.dones = s.dones[:0]
	for _, done := range dones {
		done(s.err)
	}
	return s.err
}
