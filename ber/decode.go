package ber

import (
	"fmt"

	"go.uber.org/zap"
)

// Decoder decodes BER elements according to Config.
// Zero value uses default Config.
// It may be used concurrently.
type Decoder struct {
	Config Config
}

// Decode decodes a sequence of TLV elements.
// The input must be fully consumed by complete elements.
// Returned elements alias the input buffer.
func (d Decoder) Decode(wire []byte) ([]Element, error) {
	s := d.newState()
	return s.decodeElements(wire, 0, 1)
}

// DecodeFirst decodes the first TLV element, including its descendants.
func (d Decoder) DecodeFirst(wire []byte) (element Element, rest []byte, e error) {
	s := d.newState()
	size, e := s.decodeElement(&element, wire, 0, 1)
	if e != nil {
		return Element{}, nil, e
	}
	return element, wire[size:], nil
}

func (d Decoder) newState() *decodeState {
	s := &decodeState{cfg: d.Config}
	s.cfg.applyDefaults()
	return s
}

var defaultDecoder Decoder

// Decode decodes a sequence of TLV elements with default Config.
func Decode(wire []byte) ([]Element, error) {
	return defaultDecoder.Decode(wire)
}

// DecodeFirst decodes the first TLV element with default Config.
func DecodeFirst(wire []byte) (element Element, rest []byte, e error) {
	return defaultDecoder.DecodeFirst(wire)
}

type decodeState struct {
	cfg   Config
	count int
}

func (s *decodeState) decodeElements(wire []byte, offset, depth int) (elements []Element, e error) {
	for len(wire) > 0 {
		var element Element
		size, e := s.decodeElement(&element, wire, offset, depth)
		if e != nil {
			return nil, e
		}
		elements = append(elements, element)
		wire, offset = wire[size:], offset+size
	}
	return elements, nil
}

func (s *decodeState) decodeElement(element *Element, wire []byte, offset, depth int) (size int, e error) {
	if depth > s.cfg.MaxDepth {
		return 0, newDecodeError(offset, nil, fmt.Errorf("%w: limit is %d", ErrDepthExceeded, s.cfg.MaxDepth))
	}
	if s.count++; s.cfg.MaxElements > 0 && s.count > s.cfg.MaxElements {
		return 0, newDecodeError(offset, nil, fmt.Errorf("%w: limit is %d", ErrTooManyElements, s.cfg.MaxElements))
	}

	rest, e := element.Header.Decode(wire)
	if e != nil {
		return 0, newDecodeError(offset, nil, e)
	}
	h := element.Header
	if len(rest) < h.Length {
		return 0, newDecodeError(offset, &h, fmt.Errorf("%w: need %d payload octets, have %d", ErrTruncated, h.Length, len(rest)))
	}
	headerSize := len(wire) - len(rest)
	size = headerSize + h.Length
	element.Wire = wire[:size:size]
	element.Payload = rest[:h.Length:h.Length]

	if ce := logger.Check(zap.DebugLevel, "element"); ce != nil {
		ce.Write(
			zap.Int("offset", offset),
			zap.Int("depth", depth),
			zap.Stringer("class", h.Class),
			zap.Stringer("style", h.Style),
			zap.Uint8("tag", h.Tag),
			zap.Int("length", h.Length),
		)
	}

	switch h.Class {
	case ClassUniversal:
		e = s.decodeUniversal(element, offset+headerSize, depth)
	case ClassContextSpecific:
		if h.Tag != uint8(UniversalEndOfContent) {
			element.Children, e = s.decodeElements(element.Payload, offset+headerSize, depth+1)
		}
	default:
		e = fmt.Errorf("%w: %s class", ErrUnsupportedType, h.Class)
	}
	if e != nil {
		return 0, newDecodeError(offset, &h, e)
	}
	return size, nil
}

func (s *decodeState) decodeUniversal(element *Element, payloadOffset, depth int) (e error) {
	typ := element.UniversalType()
	switch typ {
	case UniversalSequence, UniversalSet:
		element.Children, e = s.decodeElements(element.Payload, payloadOffset, depth+1)
		return e
	}

	decode := findValueDecoder(typ, s.cfg.Extended)
	if decode == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}
	element.Value, e = decode(element.Payload)
	return e
}
