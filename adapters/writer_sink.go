// File: adapters/writer_sink.go
// Author: momentics <momentics@gmail.com>

package adapters

import (
	"io"

	"github.com/momentics/wsframe/api"
)

// WriterSink delivers regions straight to an io.Writer, typically a
// net.Conn. The first write error becomes sticky: later regions are
// dropped and every subsequent completion reports the same error.
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink wraps w. Not safe for concurrent use, matching the
// single-connection encoder it serves.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit implements api.Sink.
func (s *WriterSink) Emit(region []byte, done api.Completion) {
	if s.err == nil && len(region) > 0 {
		_, s.err = s.w.Write(region)
	}
	if done != nil {
		done(s.err)
	}
}

// Err returns the sticky write error, if any.
func (s *WriterSink) Err() error { return s.err }
