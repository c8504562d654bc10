package ber_test

import (
	"github.com/usnistgov/berdecode/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
	bytesEqual   = testenv.BytesEqual
)

// encodeLength returns the minimal DER encoding of a length.
func encodeLength(length int) (b []byte) {
	if length < 0x80 {
		return []byte{byte(length)}
	}
	for l := length; l > 0; l >>= 8 {
		b = append([]byte{byte(l)}, b...)
	}
	return append([]byte{0x80 | byte(len(b))}, b...)
}
