// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Outbound WebSocket frame encoding per RFC 6455.
//
// This module avoids allocations on the encode path: header bytes are
// built in a pooled scratch buffer and payload regions are passed to the
// sink without copying.

package protocol

// Bit layout of the first two header bytes.
const (
	FinBit  byte = 0x80 // high bit of byte 0
	MaskBit byte = 0x80 // high bit of byte 1
)

// Opcodes for callers packing FirstByte. Opaque to the encoder itself.
const (
	OpcodeContinuation byte = 0x0
	OpcodeText         byte = 0x1
	OpcodeBinary       byte = 0x2
	OpcodeClose        byte = 0x8
	OpcodePing         byte = 0x9
	OpcodePong         byte = 0xA
)

// MaxFramePayload is the largest payload length this encoder will frame.
// It derives from the protocol's unsigned 32-bit length bound, reduced on
// platforms whose int cannot represent the full unsigned 32-bit range.
const MaxFramePayload = int((1<<32 - 1) & (^uint(0) >> 1))

// Frame is one outbound WebSocket frame. The caller owns it and the
// encoder consumes it once. When Masked is set, ExtensionData and
// ApplicationData are XORed in place during encode.
type Frame struct {
	// FirstByte packs FIN, the three RSV bits and the opcode. The encoder
	// writes it to the wire unchanged; RSV semantics belong to whatever
	// extension negotiated them.
	FirstByte byte

	// Masked selects client-to-server masking with MaskKey, and sets the
	// mask bit in the header.
	Masked  bool
	MaskKey [4]byte

	// ExtensionData precedes ApplicationData in the payload. Usually nil;
	// when non-nil it is emitted as its own region, even if empty.
	ExtensionData []byte

	// ApplicationData is the frame payload proper. May be empty.
	ApplicationData []byte
}

// PayloadLen returns the combined payload length of both data regions.
func (f *Frame) PayloadLen() int {
	return len(f.ExtensionData) + len(f.ApplicationData)
}
