package ber

import "fmt"

// UniversalType identifies the tag number of a Universal class element.
type UniversalType uint8

// UniversalType values.
// They coincide with the tag number, except UniversalReserved and UniversalUnknown.
const (
	UniversalEndOfContent             UniversalType = 0x00
	UniversalBoolean                  UniversalType = 0x01
	UniversalInteger                  UniversalType = 0x02
	UniversalBitString                UniversalType = 0x03
	UniversalOctetString              UniversalType = 0x04
	UniversalNull                     UniversalType = 0x05
	UniversalObjectIdentifier         UniversalType = 0x06
	UniversalObjectDescriptor         UniversalType = 0x07
	UniversalExternal                 UniversalType = 0x08
	UniversalReal                     UniversalType = 0x09
	UniversalEnumerated               UniversalType = 0x0A
	UniversalEmbeddedPdv              UniversalType = 0x0B
	UniversalUtf8String               UniversalType = 0x0C
	UniversalRelativeObjectIdentifier UniversalType = 0x0D
	UniversalSequence                 UniversalType = 0x10
	UniversalSet                      UniversalType = 0x11
	UniversalNumericString            UniversalType = 0x12
	UniversalPrintableString          UniversalType = 0x13
	UniversalT61String                UniversalType = 0x14
	UniversalVideotexString           UniversalType = 0x15
	UniversalIA5String                UniversalType = 0x16
	UniversalUtcTime                  UniversalType = 0x17
	UniversalGeneralizedTime          UniversalType = 0x18
	UniversalGraphicString            UniversalType = 0x19
	UniversalVisibleString            UniversalType = 0x1A
	UniversalGeneralString            UniversalType = 0x1B
	UniversalUniversalString          UniversalType = 0x1C
	UniversalCharacterString          UniversalType = 0x1D
	UniversalBmpString                UniversalType = 0x1E

	// UniversalReserved represents tag numbers 0x0E and 0x0F.
	UniversalReserved UniversalType = 0xFE
	// UniversalUnknown represents any other tag number.
	UniversalUnknown UniversalType = 0xFF
)

var universalTypeNames = map[UniversalType]string{
	UniversalEndOfContent:             "EndOfContent",
	UniversalBoolean:                  "Boolean",
	UniversalInteger:                  "Integer",
	UniversalBitString:                "BitString",
	UniversalOctetString:              "OctetString",
	UniversalNull:                     "Null",
	UniversalObjectIdentifier:         "ObjectIdentifier",
	UniversalObjectDescriptor:         "ObjectDescriptor",
	UniversalExternal:                 "External",
	UniversalReal:                     "Real",
	UniversalEnumerated:               "Enumerated",
	UniversalEmbeddedPdv:              "EmbeddedPdv",
	UniversalUtf8String:               "Utf8String",
	UniversalRelativeObjectIdentifier: "RelativeObjectIdentifier",
	UniversalSequence:                 "Sequence",
	UniversalSet:                      "Set",
	UniversalNumericString:            "NumericString",
	UniversalPrintableString:          "PrintableString",
	UniversalT61String:                "T61String",
	UniversalVideotexString:           "VideotexString",
	UniversalIA5String:                "IA5String",
	UniversalUtcTime:                  "UtcTime",
	UniversalGeneralizedTime:          "GeneralizedTime",
	UniversalGraphicString:            "GraphicString",
	UniversalVisibleString:            "VisibleString",
	UniversalGeneralString:            "GeneralString",
	UniversalUniversalString:          "UniversalString",
	UniversalCharacterString:          "CharacterString",
	UniversalBmpString:                "BmpString",
	UniversalReserved:                 "Reserved",
	UniversalUnknown:                  "Unknown",
}

// UniversalTypeFromTag maps a tag number to UniversalType.
// This mapping is total: reserved and unrecognized numbers map to UniversalReserved and UniversalUnknown.
func UniversalTypeFromTag(tag uint8) UniversalType {
	switch {
	case tag == 0x0E, tag == 0x0F:
		return UniversalReserved
	case tag <= uint8(UniversalBmpString):
		return UniversalType(tag)
	}
	return UniversalUnknown
}

func (t UniversalType) String() string {
	if s, ok := universalTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("UniversalType(%02X)", uint8(t))
}
