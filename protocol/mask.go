// File: protocol/mask.go
// Author: momentics <momentics@gmail.com>
//
// RFC 6455 section 5.3 payload masking. The key stream is one continuous
// cyclic sequence over the whole payload: when extension data precedes
// application data, the application region continues at cyclic offset
// len(extension) mod 4 instead of restarting at zero. Restarting would
// produce wire-incompatible output.

package protocol

// maskBytes XORs p in place with key, starting at the given cyclic
// offset, and returns the offset at which a following region continues
// the same key stream.
func maskBytes(p []byte, key [4]byte, offset int) int {
	for i := range p {
		p[i] ^= key[(offset+i)&3]
	}
	return (offset + len(p)) & 3
}

// maskPayload masks both payload regions of f in place under one
// continuous key stream. Unmasked frames pass through untouched.
func (f *Frame) maskPayload() {
	if !f.Masked {
		return
	}
	off := maskBytes(f.ExtensionData, f.MaskKey, 0)
	maskBytes(f.ApplicationData, f.MaskKey, off)
}
