// File: api/sink.go
// Author: momentics <momentics@gmail.com>
//
// Output sink abstraction for the outbound frame codec.

package api

// Completion is invoked exactly once when the write it was attached to has
// been handed to the underlying transport, or when that transport has
// failed. A nil error means the write was accepted.
type Completion func(error)

// Sink accepts an ordered sequence of byte regions for transmission.
//
// Implementations must deliver regions to the transport in Emit call
// order. A region is only valid for the duration of the Emit call: a sink
// that defers the actual write must copy the region before returning, as
// the encoder reuses its header scratch buffer across frames.
type Sink interface {
	// Emit submits one region. done may be nil; when non-nil it fires
	// exactly once, synchronously or later, after the region has been
	// written or the sink has failed.
	Emit(region []byte, done Completion)
}
