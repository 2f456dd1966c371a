// File: adapters/log_sink.go
// Author: momentics <momentics@gmail.com>

package adapters

import (
	"go.uber.org/zap"

	"github.com/momentics/wsframe/api"
)

// LogSink decorates another sink with per-emission debug logging.
type LogSink struct {
	inner api.Sink
	l     *zap.Logger
	seq   int
}

// NewLogSink traces every emission destined for inner through l.
func NewLogSink(inner api.Sink, l *zap.Logger) *LogSink {
	if l == nil {
		l = zap.NewNop()
	}
	return &LogSink{inner: inner, l: l}
}

// Emit implements api.Sink.
func (s *LogSink) Emit(region []byte, done api.Completion) {
	s.seq++
	s.l.Debug("emit",
		zap.Int("seq", s.seq),
		zap.Int("len", len(region)),
		zap.Bool("completion", done != nil),
	)
	s.inner.Emit(region, done)
}
