package ber_test

import (
	"testing"

	"github.com/usnistgov/berdecode/ber"
)

func TestHeader(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		input  string
		err    error
		class  ber.Class
		style  ber.Style
		tag    uint8
		length int
		rest   int
	}{
		{input: "", err: ber.ErrTruncated},
		{input: "02", err: ber.ErrTruncated},
		{input: "0281", err: ber.ErrTruncated},
		{input: "0282 01", err: ber.ErrTruncated},
		{input: "0280", err: ber.ErrUnsupportedEncoding},
		{input: "1F01", err: ber.ErrUnsupportedEncoding},
		{input: "3F01", err: ber.ErrUnsupportedEncoding},
		{input: "0200", class: ber.ClassUniversal, style: ber.Primitive, tag: 0x02, length: 0},
		{input: "3003 A0A1A2", class: ber.ClassUniversal, style: ber.Constructed, tag: 0x10, length: 3, rest: 3},
		{input: "047F", class: ber.ClassUniversal, style: ber.Primitive, tag: 0x04, length: 127},
		{input: "048180", class: ber.ClassUniversal, style: ber.Primitive, tag: 0x04, length: 128},
		{input: "04820100", class: ber.ClassUniversal, style: ber.Primitive, tag: 0x04, length: 256},
		{input: "0481FF A0", class: ber.ClassUniversal, style: ber.Primitive, tag: 0x04, length: 255, rest: 1},
		{input: "048400010000", class: ber.ClassUniversal, style: ber.Primitive, tag: 0x04, length: 65536},
		{input: "4105", class: ber.ClassApplication, style: ber.Primitive, tag: 0x01, length: 5},
		{input: "A300", class: ber.ClassContextSpecific, style: ber.Constructed, tag: 0x03, length: 0},
		{input: "DE01", class: ber.ClassPrivate, style: ber.Primitive, tag: 0x1E, length: 1},
	}
	for _, tt := range tests {
		var h ber.Header
		rest, e := h.Decode(bytesFromHex(tt.input))
		if tt.err != nil {
			assert.ErrorIs(e, tt.err, tt.input)
			continue
		}
		if !assert.NoError(e, tt.input) {
			continue
		}
		assert.Equal(tt.class, h.Class, tt.input)
		assert.Equal(tt.style, h.Style, tt.input)
		assert.Equal(tt.tag, h.Tag, tt.input)
		assert.Equal(tt.length, h.Length, tt.input)
		assert.Len(rest, tt.rest, tt.input)
	}
}

func TestHeaderLengthForms(t *testing.T) {
	assert, _ := makeAR(t)

	lengths := []int{0, 1, 0x7E, 0x7F, 0x80, 0xFF, 0x100, 0x1234, 0xFFFF, 0x10000, 0xABCDEF, 0x7FFFFFFF, 0x123456789A}
	for _, length := range lengths {
		wire := append([]byte{0x04}, encodeLength(length)...)
		wire = append(wire, 0xEE)

		var h ber.Header
		rest, e := h.Decode(wire)
		if !assert.NoError(e, "%d", length) {
			continue
		}
		assert.Equal(length, h.Length, "%d", length)
		assert.Equal([]byte{0xEE}, rest, "%d", length)
		assert.Equal(len(wire)-1, h.Size(), "%d", length)

		if length < 0x80 {
			assert.Len(wire, 3, "%d", length)
		} else {
			assert.EqualValues(0x80|(ber.LengthSize(length)-1), wire[1], "%d", length)
		}
	}
}

func TestHeaderUniversalType(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(ber.UniversalSequence, ber.Header{Class: ber.ClassUniversal, Tag: 0x10}.UniversalType())
	assert.Equal(ber.UniversalUnknown, ber.Header{Class: ber.ClassContextSpecific, Tag: 0x10}.UniversalType())
	assert.Equal(ber.UniversalUnknown, ber.Header{Class: ber.ClassApplication, Tag: 0x02}.UniversalType())

	assert.Equal("Universal/Constructed Sequence:3", ber.Header{Class: ber.ClassUniversal, Style: ber.Constructed, Tag: 0x10, Length: 3}.String())
	assert.Equal("ContextSpecific/Constructed 3:0", ber.Header{Class: ber.ClassContextSpecific, Style: ber.Constructed, Tag: 3}.String())
}

func TestUniversalTypeFromTag(t *testing.T) {
	assert, _ := makeAR(t)

	for tag := 0; tag <= 0xFF; tag++ {
		typ := ber.UniversalTypeFromTag(uint8(tag))
		switch {
		case tag == 0x0E, tag == 0x0F:
			assert.Equal(ber.UniversalReserved, typ, "%02X", tag)
		case tag <= 0x1E:
			assert.EqualValues(tag, typ, "%02X", tag)
			assert.NotContains(typ.String(), "UniversalType(", "%02X", tag)
		default:
			assert.Equal(ber.UniversalUnknown, typ, "%02X", tag)
		}
	}

	assert.Equal("ObjectIdentifier", ber.UniversalObjectIdentifier.String())
	assert.Equal("BmpString", ber.UniversalBmpString.String())
	assert.Equal("Unknown", ber.UniversalUnknown.String())
}
