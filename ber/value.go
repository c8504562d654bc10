package ber

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value is a decoded primitive value.
type Value interface {
	fmt.Stringer

	// UniversalType returns the universal type that this value was decoded from.
	UniversalType() UniversalType
}

// Integer is a decoded INTEGER.
type Integer int64

// UniversalType implements Value interface.
func (Integer) UniversalType() UniversalType {
	return UniversalInteger
}

func (v Integer) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// DecodeInteger decodes an INTEGER payload.
// The payload must be 0, 2, 4, or 8 octets; an empty payload decodes to zero.
func DecodeInteger(payload []byte) (Integer, error) {
	switch len(payload) {
	case 0:
		return 0, nil
	case 2:
		return Integer(int16(binary.BigEndian.Uint16(payload))), nil
	case 4:
		return Integer(int32(binary.BigEndian.Uint32(payload))), nil
	case 8:
		return Integer(binary.BigEndian.Uint64(payload)), nil
	}
	return 0, fmt.Errorf("%w: INTEGER of %d octets", ErrUnsupportedEncoding, len(payload))
}

// OctetString is a decoded OCTET STRING.
type OctetString []byte

// UniversalType implements Value interface.
func (OctetString) UniversalType() UniversalType {
	return UniversalOctetString
}

func (v OctetString) String() string {
	return fmt.Sprintf("%X", []byte(v))
}

// DecodeOctetString decodes an OCTET STRING payload.
// The returned value is a copy of the payload.
func DecodeOctetString(payload []byte) (OctetString, error) {
	return OctetString(append([]byte{}, payload...)), nil
}

// BitString is a decoded BIT STRING.
//
// It holds the complete payload, including the leading octet that counts unused bits in the final octet.
// Use UnusedBits and Bits to interpret it.
type BitString []byte

// UniversalType implements Value interface.
func (BitString) UniversalType() UniversalType {
	return UniversalBitString
}

func (v BitString) String() string {
	return fmt.Sprintf("%X", []byte(v))
}

// UnusedBits returns the number of unused bits in the final octet.
// ok is false if the leading octet is missing or does not form a valid DER BIT STRING.
func (v BitString) UnusedBits() (n int, ok bool) {
	if len(v) == 0 || v[0] > 7 || (len(v) == 1 && v[0] != 0) {
		return 0, false
	}
	return int(v[0]), true
}

// Bits returns the bit string content, without the leading octet.
func (v BitString) Bits() []byte {
	if len(v) == 0 {
		return nil
	}
	return v[1:]
}

// DecodeBitString decodes a BIT STRING payload.
// The returned value is a copy of the payload; the leading octet is not interpreted.
func DecodeBitString(payload []byte) (BitString, error) {
	return BitString(append([]byte{}, payload...)), nil
}

// ObjectIdentifier is a decoded OBJECT IDENTIFIER.
type ObjectIdentifier []uint64

// UniversalType implements Value interface.
func (ObjectIdentifier) UniversalType() UniversalType {
	return UniversalObjectIdentifier
}

// String returns dotted decimal notation.
func (v ObjectIdentifier) String() string {
	var b strings.Builder
	for i, arc := range v {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(arc, 10))
	}
	return b.String()
}

// Equal determines whether two OIDs have the same arcs.
func (v ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// DecodeObjectIdentifier decodes an OBJECT IDENTIFIER payload.
//
// The first octet carries the first two arcs as 40*X+Y.
// Each subsequent arc is a base-128 number, most significant group first, with 0x80 set on all but the last octet.
func DecodeObjectIdentifier(payload []byte) (ObjectIdentifier, error) {
	if len(payload) == 0 {
		return ObjectIdentifier{}, nil
	}

	first := uint64(payload[0])
	oid := ObjectIdentifier{first / 40, first % 40}

	var arc uint64
	pending := false
	for _, b := range payload[1:] {
		if arc > math.MaxUint64>>7 {
			return nil, fmt.Errorf("%w: OID arc overflow", ErrInvalidEncoding)
		}
		arc = arc<<7 | uint64(b&0x7F)
		pending = b&0x80 != 0
		if !pending {
			oid = append(oid, arc)
			arc = 0
		}
	}
	if pending {
		return nil, fmt.Errorf("%w: OID ends within an arc", ErrInvalidEncoding)
	}
	return oid, nil
}

// UTF8String is a decoded UTF8String.
type UTF8String string

// UniversalType implements Value interface.
func (UTF8String) UniversalType() UniversalType {
	return UniversalUtf8String
}

func (v UTF8String) String() string {
	return string(v)
}

// DecodeUTF8String decodes a UTF8String payload.
func DecodeUTF8String(payload []byte) (UTF8String, error) {
	s, e := decodeUTF8(payload, UniversalUtf8String)
	return UTF8String(s), e
}

// PrintableString is a decoded PrintableString.
type PrintableString string

// UniversalType implements Value interface.
func (PrintableString) UniversalType() UniversalType {
	return UniversalPrintableString
}

func (v PrintableString) String() string {
	return string(v)
}

// DecodePrintableString decodes a PrintableString payload.
// The payload must be valid UTF-8; the PrintableString character set is not enforced.
func DecodePrintableString(payload []byte) (PrintableString, error) {
	s, e := decodeUTF8(payload, UniversalPrintableString)
	return PrintableString(s), e
}

// UTCTime is an undecoded UTCTime string, such as "250102030405Z".
type UTCTime string

// UniversalType implements Value interface.
func (UTCTime) UniversalType() UniversalType {
	return UniversalUtcTime
}

func (v UTCTime) String() string {
	return string(v)
}

// DecodeUTCTime decodes a UTCTime payload.
func DecodeUTCTime(payload []byte) (UTCTime, error) {
	s, e := decodeUTF8(payload, UniversalUtcTime)
	return UTCTime(s), e
}

// GeneralizedTime is an undecoded GeneralizedTime string, such as "20250102030405Z".
type GeneralizedTime string

// UniversalType implements Value interface.
func (GeneralizedTime) UniversalType() UniversalType {
	return UniversalGeneralizedTime
}

func (v GeneralizedTime) String() string {
	return string(v)
}

// DecodeGeneralizedTime decodes a GeneralizedTime payload.
func DecodeGeneralizedTime(payload []byte) (GeneralizedTime, error) {
	s, e := decodeUTF8(payload, UniversalGeneralizedTime)
	return GeneralizedTime(s), e
}

func decodeUTF8(payload []byte, typ UniversalType) (string, error) {
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidEncoding, typ)
	}
	return string(payload), nil
}

type valueDecoder func(payload []byte) (Value, error)

func wrapDecoder[V Value](f func([]byte) (V, error)) valueDecoder {
	return func(payload []byte) (Value, error) {
		v, e := f(payload)
		if e != nil {
			return nil, e
		}
		return v, nil
	}
}

var valueDecoders = map[UniversalType]valueDecoder{
	UniversalInteger:          wrapDecoder(DecodeInteger),
	UniversalOctetString:      wrapDecoder(DecodeOctetString),
	UniversalBitString:        wrapDecoder(DecodeBitString),
	UniversalObjectIdentifier: wrapDecoder(DecodeObjectIdentifier),
	UniversalUtf8String:       wrapDecoder(DecodeUTF8String),
	UniversalPrintableString:  wrapDecoder(DecodePrintableString),
	UniversalUtcTime:          wrapDecoder(DecodeUTCTime),
	UniversalGeneralizedTime:  wrapDecoder(DecodeGeneralizedTime),
}

// Boolean is a decoded BOOLEAN.
// It is only produced when Config.Extended is set.
type Boolean bool

// UniversalType implements Value interface.
func (Boolean) UniversalType() UniversalType {
	return UniversalBoolean
}

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

func decodeBoolean(payload []byte) (Boolean, error) {
	if len(payload) != 1 {
		return false, fmt.Errorf("%w: BOOLEAN of %d octets", ErrInvalidEncoding, len(payload))
	}
	return payload[0] != 0x00, nil
}

// Null is a decoded NULL.
// It is only produced when Config.Extended is set.
type Null struct{}

// UniversalType implements Value interface.
func (Null) UniversalType() UniversalType {
	return UniversalNull
}

func (Null) String() string {
	return "NULL"
}

func decodeNull(payload []byte) (Null, error) {
	if len(payload) != 0 {
		return Null{}, fmt.Errorf("%w: NULL of %d octets", ErrInvalidEncoding, len(payload))
	}
	return Null{}, nil
}

// BigInteger is a decoded INTEGER that does not fit in int64.
// It is only produced when Config.Extended is set.
type BigInteger struct {
	*big.Int
}

// UniversalType implements Value interface.
func (BigInteger) UniversalType() UniversalType {
	return UniversalInteger
}

// decodeAnyInteger decodes a two's complement INTEGER of any size.
// Values that fit in 8 octets are returned as Integer.
func decodeAnyInteger(payload []byte) (Value, error) {
	if len(payload) <= 8 {
		return Integer(signExtend(payload)), nil
	}

	n := new(big.Int).SetBytes(payload)
	if payload[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(payload))))
	}
	return BigInteger{n}, nil
}

// signExtend decodes a two's complement number of at most 8 octets.
func signExtend(payload []byte) (n int64) {
	for i, b := range payload {
		if i == 0 {
			n = int64(int8(b))
		} else {
			n = n<<8 | int64(b)
		}
	}
	return n
}

// Enumerated is a decoded ENUMERATED.
// It is only produced when Config.Extended is set.
type Enumerated int64

// UniversalType implements Value interface.
func (Enumerated) UniversalType() UniversalType {
	return UniversalEnumerated
}

func (v Enumerated) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func decodeEnumerated(payload []byte) (Enumerated, error) {
	if len(payload) > 8 {
		return 0, fmt.Errorf("%w: ENUMERATED of %d octets", ErrUnsupportedEncoding, len(payload))
	}
	return Enumerated(signExtend(payload)), nil
}

// IA5String is a decoded IA5String.
// It is only produced when Config.Extended is set.
type IA5String string

// UniversalType implements Value interface.
func (IA5String) UniversalType() UniversalType {
	return UniversalIA5String
}

func (v IA5String) String() string {
	return string(v)
}

// NumericString is a decoded NumericString.
// It is only produced when Config.Extended is set.
type NumericString string

// UniversalType implements Value interface.
func (NumericString) UniversalType() UniversalType {
	return UniversalNumericString
}

func (v NumericString) String() string {
	return string(v)
}

// VisibleString is a decoded VisibleString.
// It is only produced when Config.Extended is set.
type VisibleString string

// UniversalType implements Value interface.
func (VisibleString) UniversalType() UniversalType {
	return UniversalVisibleString
}

func (v VisibleString) String() string {
	return string(v)
}

func decodeCharset(payload []byte, typ UniversalType, allow func(b byte) bool) (string, error) {
	for i, b := range payload {
		if !allow(b) {
			return "", fmt.Errorf("%w: %s has invalid octet %02X at %d", ErrInvalidEncoding, typ, b, i)
		}
	}
	return string(payload), nil
}

var extendedValueDecoders = map[UniversalType]valueDecoder{
	UniversalBoolean:    wrapDecoder(decodeBoolean),
	UniversalNull:       wrapDecoder(decodeNull),
	UniversalInteger:    decodeAnyInteger,
	UniversalEnumerated: wrapDecoder(decodeEnumerated),
	UniversalIA5String: func(payload []byte) (Value, error) {
		s, e := decodeCharset(payload, UniversalIA5String, func(b byte) bool { return b < 0x80 })
		if e != nil {
			return nil, e
		}
		return IA5String(s), nil
	},
	UniversalNumericString: func(payload []byte) (Value, error) {
		s, e := decodeCharset(payload, UniversalNumericString, func(b byte) bool { return b == ' ' || (b >= '0' && b <= '9') })
		if e != nil {
			return nil, e
		}
		return NumericString(s), nil
	},
	UniversalVisibleString: func(payload []byte) (Value, error) {
		s, e := decodeCharset(payload, UniversalVisibleString, func(b byte) bool { return b >= 0x20 && b <= 0x7E })
		if e != nil {
			return nil, e
		}
		return VisibleString(s), nil
	},
}

// findValueDecoder returns the decoder for a primitive universal type, or nil if it is unsupported.
func findValueDecoder(typ UniversalType, extended bool) valueDecoder {
	if extended {
		if f := extendedValueDecoders[typ]; f != nil {
			return f
		}
	}
	return valueDecoders[typ]
}
