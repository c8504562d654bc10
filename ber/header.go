package ber

import (
	"fmt"
	"math"
)

// Class is the tag class of an element.
type Class uint8

// Class values, as they appear in the identifier octet.
const (
	ClassUniversal       Class = 0x00
	ClassApplication     Class = 0x40
	ClassContextSpecific Class = 0x80
	ClassPrivate         Class = 0xC0
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "ContextSpecific"
	case ClassPrivate:
		return "Private"
	}
	return fmt.Sprintf("Class(%02X)", uint8(c))
}

// Style indicates whether an element is primitive or constructed.
type Style uint8

// Style values, as they appear in the identifier octet.
const (
	Primitive   Style = 0x00
	Constructed Style = 0x20
)

func (s Style) String() string {
	if s == Constructed {
		return "Constructed"
	}
	return "Primitive"
}

const (
	classMask    = 0xC0
	styleMask    = 0x20
	tagMask      = 0x1F
	tagHighForm  = 0x1F
	lengthLong   = 0x80
	lengthMask   = 0x7F
	maxLengthInt = math.MaxInt
)

// Header represents the identifier and length octets of a TLV element.
type Header struct {
	Class Class
	Style Style
	// Tag is the tag number, less than 31.
	Tag uint8
	// Length is the TLV-LENGTH, i.e. payload size in octets.
	Length int
}

// UniversalType returns the universal type of a Universal class element.
// Other classes always return UniversalUnknown.
func (h Header) UniversalType() UniversalType {
	if h.Class != ClassUniversal {
		return UniversalUnknown
	}
	return UniversalTypeFromTag(h.Tag)
}

// IsConstructed returns true if the Constructed bit is set.
func (h Header) IsConstructed() bool {
	return h.Style == Constructed
}

// Size returns the encoded header size.
// This is the size of the minimal DER length encoding; Decode records the actual size in Element.Wire.
func (h Header) Size() int {
	return 1 + LengthSize(h.Length)
}

func (h Header) String() string {
	tag := fmt.Sprint(h.Tag)
	if h.Class == ClassUniversal {
		tag = h.UniversalType().String()
	}
	return fmt.Sprintf("%s/%s %s:%d", h.Class, h.Style, tag, h.Length)
}

// Decode extracts a header from the buffer.
// It advances past the identifier and length octets, but not the payload.
func (h *Header) Decode(wire []byte) (rest []byte, e error) {
	if len(wire) < 1 {
		return nil, fmt.Errorf("%w: missing identifier octet", ErrTruncated)
	}
	id := wire[0]
	if id&tagMask == tagHighForm {
		return nil, fmt.Errorf("%w: high tag number form", ErrUnsupportedEncoding)
	}

	var length int
	if rest, e = decodeLength(wire[1:], &length); e != nil {
		return nil, e
	}

	h.Class = Class(id & classMask)
	h.Style = Style(id & styleMask)
	h.Tag = id & tagMask
	h.Length = length
	return rest, nil
}

func decodeLength(wire []byte, length *int) (rest []byte, e error) {
	if len(wire) < 1 {
		return nil, fmt.Errorf("%w: missing length octet", ErrTruncated)
	}
	first := wire[0]
	switch {
	case first < lengthLong:
		*length = int(first)
		return wire[1:], nil
	case first == lengthLong:
		return nil, fmt.Errorf("%w: indefinite length", ErrUnsupportedEncoding)
	}

	n := int(first & lengthMask)
	wire = wire[1:]
	if len(wire) < n {
		return nil, fmt.Errorf("%w: need %d length octets, have %d", ErrTruncated, n, len(wire))
	}
	l := 0
	for _, b := range wire[:n] {
		if l > (maxLengthInt-int(b))>>8 {
			// no input can be this long
			return nil, fmt.Errorf("%w: length overflow", ErrTruncated)
		}
		l = l<<8 | int(b)
	}
	*length = l
	return wire[n:], nil
}

// LengthSize returns the size of the minimal DER encoding of a length.
func LengthSize(length int) int {
	if length < lengthLong {
		return 1
	}
	n := 1
	for ; length > 0; length >>= 8 {
		n++
	}
	return n
}
