// File: adapters/queue_sink.go
// Author: momentics <momentics@gmail.com>

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/wsframe/api"
)

// pendingWrite is one queued region with its optional completion.
type pendingWrite struct {
	region []byte
	done   api.Completion
}

// QueueSink buffers emissions in FIFO order and forwards them to an inner
// sink on Flush. Every region is copied at Emit time, so the encoder may
// reuse its scratch buffer immediately. This is the shape of an
// asynchronous transport whose writes are queued or batched.
type QueueSink struct {
	inner   api.Sink
	pending *queue.Queue
}

// NewQueueSink buffers writes destined for inner.
func NewQueueSink(inner api.Sink) *QueueSink {
	return &QueueSink{inner: inner, pending: queue.New()}
}

// Emit implements api.Sink.
func (s *QueueSink) Emit(region []byte, done api.Completion) {
	buf := make([]byte, len(region))
	copy(buf, region)
	s.pending.Add(pendingWrite{region: buf, done: done})
}

// Pending returns the number of queued writes.
func (s *QueueSink) Pending() int {
	return s.pending.Length()
}

// Flush forwards all queued writes to the inner sink in submission order,
// including writes queued by completions that run during the flush.
func (s *QueueSink) Flush() {
	for s.pending.Length() > 0 {
		w := s.pending.Remove().(pendingWrite)
		s.inner.Emit(w.region, w.done)
	}
}
