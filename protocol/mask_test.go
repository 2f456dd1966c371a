package protocol

import (
	"bytes"
	"testing"
)

func TestMaskInvolution(t *testing.T) {
	key := [4]byte{0xDE, 0xAD, 0xBE, 0xEF}
	orig := []byte("the quick brown fox jumps over the lazy dog")

	p := append([]byte(nil), orig...)
	maskBytes(p, key, 0)
	if bytes.Equal(p, orig) {
		t.Fatal("masking changed nothing")
	}
	maskBytes(p, key, 0)
	if !bytes.Equal(p, orig) {
		t.Errorf("double masking did not restore input: %x != %x", p, orig)
	}
}

func TestMaskOffsetContinuity(t *testing.T) {
	key := [4]byte{0x11, 0x22, 0x33, 0x44}

	// Masking one 8-byte region must equal masking it as a 3-byte region
	// followed by a 5-byte region continuing the key stream.
	whole := make([]byte, 8)
	maskBytes(whole, key, 0)

	split := make([]byte, 8)
	off := maskBytes(split[:3], key, 0)
	if off != 3 {
		t.Fatalf("continuation offset = %d, want 3", off)
	}
	maskBytes(split[3:], key, off)

	if !bytes.Equal(whole, split) {
		t.Errorf("split masking diverged from contiguous masking: %x != %x", split, whole)
	}
}

func TestMaskPayloadCrossRegion(t *testing.T) {
	key := [4]byte{0xA1, 0xB2, 0xC3, 0xD4}
	f := &Frame{
		Masked:          true,
		MaskKey:         key,
		ExtensionData:   make([]byte, 3),
		ApplicationData: make([]byte, 5),
	}
	f.maskPayload()

	// Zero input makes the masked output equal the key stream itself.
	for i, b := range f.ExtensionData {
		if b != key[i%4] {
			t.Errorf("extension byte %d = %#x, want key[%d] = %#x", i, b, i%4, key[i%4])
		}
	}
	for i, b := range f.ApplicationData {
		want := key[(3+i)%4]
		if b != want {
			t.Errorf("application byte %d = %#x, want key[%d] = %#x", i, b, (3+i)%4, want)
		}
	}
	// Application byte 3 in particular continues the stream at key[2].
	if f.ApplicationData[3] != key[2] {
		t.Errorf("application byte 3 masked with %#x, want key[2] = %#x", f.ApplicationData[3], key[2])
	}
}

func TestMaskPayloadNoKey(t *testing.T) {
	ext := []byte{1, 2, 3}
	app := []byte{4, 5, 6, 7}
	f := &Frame{
		ExtensionData:   ext,
		ApplicationData: app,
	}
	f.maskPayload()
	if !bytes.Equal(ext, []byte{1, 2, 3}) || !bytes.Equal(app, []byte{4, 5, 6, 7}) {
		t.Error("unmasked frame payload must pass through untouched")
	}
}
