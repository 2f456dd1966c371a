// File: protocol/encoder.go
// Author: momentics <momentics@gmail.com>
//
// Outbound frame encoder. One instance serves one logical connection,
// driven by one thread of control at a time. The only reentrancy it
// tolerates is a sink emission synchronously triggering another Encode on
// the same instance; the scratch check-out/check-in protocol below makes
// that safe without a lock.

package protocol

import (
	"go.uber.org/zap"

	"github.com/momentics/wsframe/api"
	"github.com/momentics/wsframe/control"
	"github.com/momentics/wsframe/pool"
)

// scratchState guards the header scratch buffer.
type scratchState uint8

const (
	scratchAvailable scratchState = iota
	scratchCheckedOut
)

// Encoder turns Frames into RFC 6455 wire bytes on an api.Sink. Not safe
// for concurrent use; a true concurrent collision fails loudly instead of
// corrupting the scratch buffer.
type Encoder struct {
	sink    api.Sink
	scratch []byte // nil while detached
	state   scratchState

	stats *control.Stats
	log   *zap.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithStats wires encode counters into st.
func WithStats(st *control.Stats) Option {
	return func(e *Encoder) { e.stats = st }
}

// WithLogger enables per-frame debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEncoder returns a detached encoder. Attach must be called before
// Encode.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Attach binds the encoder to its sink and acquires the header scratch
// buffer from the pool.
func (e *Encoder) Attach(sink api.Sink) {
	e.sink = sink
	e.scratch = pool.GetScratch()
	e.state = scratchAvailable
}

// Detach releases the scratch buffer and drops the sink. The encoder must
// not encode again until reattached.
func (e *Encoder) Detach() {
	if e.scratch != nil {
		pool.PutScratch(e.scratch)
		e.scratch = nil
	}
	e.sink = nil
}

// Encode emits f on the attached sink as two or three ordered writes:
// header, extension data (when the region is present), application data.
// done, when non-nil, rides on the final write only.
//
// The scratch buffer is handed back before the first emission, so a
// completion or sink callback that synchronously re-enters Encode finds
// the encoder in a consistent state. When f.Masked is set, both payload
// regions are XORed in place before emission.
//
// Encode panics with *api.ContractViolation on a detached encoder, on a
// concurrent collision, or when the payload exceeds MaxFramePayload. It
// has no recoverable failure mode of its own; transport errors travel
// through done.
func (e *Encoder) Encode(f *Frame, done api.Completion) {
	if e.scratch == nil {
		api.Violate("encode", "no scratch buffer: encoder used before Attach or after Detach")
	}
	if e.state == scratchCheckedOut {
		api.Violate("encode", "scratch buffer already checked out: concurrent use of one encoder")
	}

	e.state = scratchCheckedOut
	length := f.PayloadLen()
	hdr := appendHeader(e.scratch[:0], f.FirstByte, length, f.Masked)
	if f.Masked {
		hdr = append(hdr, f.MaskKey[:]...)
	}
	// Hand the scratch back before anything is emitted: emission may
	// synchronously trigger a new Encode on this encoder.
	e.state = scratchAvailable

	if e.stats != nil {
		e.stats.CountFrame(len(hdr)+length, f.Masked)
	}
	e.log.Debug("frame encoded",
		zap.Uint8("first_byte", f.FirstByte),
		zap.Int("header_len", len(hdr)),
		zap.Int("payload_len", length),
		zap.Bool("masked", f.Masked),
	)

	e.sink.Emit(hdr, nil)

	f.maskPayload()
	if f.ExtensionData != nil {
		e.sink.Emit(f.ExtensionData, nil)
	}
	e.sink.Emit(f.ApplicationData, done)
}
