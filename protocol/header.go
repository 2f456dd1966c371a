// File: protocol/header.go
// Author: momentics <momentics@gmail.com>

package protocol

import (
	"encoding/binary"

	"github.com/momentics/wsframe/api"
)

// appendHeader serializes the header prefix (everything before the mask
// key) into dst and returns the extended slice. Three mutually exclusive
// length regimes per RFC 6455 section 5.2; the mask bit is ORed into the
// length/marker byte.
//
// A length outside [0, MaxFramePayload] means the caller built an
// unencodable frame; that is a contract violation, not a runtime error.
func appendHeader(dst []byte, firstByte byte, length int, masked bool) []byte {
	if length < 0 || length > MaxFramePayload {
		api.Violate("encode", "frame payload exceeds maximum encodable size")
	}

	var maskBit byte
	if masked {
		maskBit = MaskBit
	}

	dst = append(dst, firstByte)
	switch {
	case length <= 125:
		dst = append(dst, byte(length)|maskBit)
	case length <= 0xFFFF:
		dst = append(dst, 126|maskBit)
		dst = binary.BigEndian.AppendUint16(dst, uint16(length))
	default:
		dst = append(dst, 127|maskBit)
		dst = binary.BigEndian.AppendUint64(dst, uint64(length))
	}
	return dst
}
