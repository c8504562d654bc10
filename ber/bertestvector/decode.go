// Package bertestvector contains test vectors for BER decoding.
package bertestvector

import (
	_ "embed"

	"github.com/usnistgov/berdecode/ber"
)

// DecodeTests contains test vectors for ber.Decode with default config.
// Lower case text in Input is a comment.
var DecodeTests = []struct {
	Input string
	Err   error // nil means success
	N     int   // number of top-level elements
}{
	{Input: "", N: 0},
	{Input: "int=0200", N: 1},
	{Input: "int=02020102", N: 1},
	{Input: "int=020400000001 int=020800000000000000FF", N: 2},
	{Input: "int-one-octet=020105", Err: ber.ErrUnsupportedEncoding},
	{Input: "int-three-octets=0203000001", Err: ber.ErrUnsupportedEncoding},
	{Input: "octets=0403A0A1A2", N: 1},
	{Input: "octets-long-length=048103A0A1A2", N: 1},
	{Input: "octets-zero-padded-length=04820003A0A1A2", N: 1},
	{Input: "bits=030200FF", N: 1},
	{Input: "oid=06062A864886F70D", N: 1},
	{Input: "oid-empty=0600", N: 1},
	{Input: "oid-incomplete-arc=06022A86", Err: ber.ErrInvalidEncoding},
	{Input: "utf=0C0368C3A9", N: 1},
	{Input: "utf-invalid=0C02C328", Err: ber.ErrInvalidEncoding},
	{Input: "printable=130255 53", N: 1},
	{Input: "utctime=170D 3235303130323033303430355A", N: 1},
	{Input: "gentime=180F 32303235303130323033303430355A", N: 1},
	{Input: "seq=3008 02020001 02020002", N: 1},
	{Input: "set=3104 02020001", N: 1},
	{Input: "seq-empty=3000 set-empty=3100", N: 2},
	{Input: "ctx-zero=A003 020102", N: 1},
	{Input: "ctx-one=A104 02020001", N: 1},
	{Input: "ctx-three-nested=A306 3004 02020001", N: 1},
	{Input: "ctx-one-unsupported=A102 0500", Err: ber.ErrUnsupportedType},
	{Input: "ctx-one-primitive-truncated=8101 05", Err: ber.ErrTruncated},
	{Input: "boolean=0101FF", Err: ber.ErrUnsupportedType},
	{Input: "null=0500", Err: ber.ErrUnsupportedType},
	{Input: "enumerated=0A0101", Err: ber.ErrUnsupportedType},
	{Input: "ascii=1601 41", Err: ber.ErrUnsupportedType},
	{Input: "reserved=0E00", Err: ber.ErrUnsupportedType},
	{Input: "application=4100", Err: ber.ErrUnsupportedType},
	{Input: "private=C100", Err: ber.ErrUnsupportedType},
	{Input: "high-tag=1F2100", Err: ber.ErrUnsupportedEncoding},
	{Input: "indefinite=3080 0000", Err: ber.ErrUnsupportedEncoding},
	{Input: "missing-length=30", Err: ber.ErrTruncated},
	{Input: "missing-length-octets=0482 00", Err: ber.ErrTruncated},
	{Input: "short-payload=3005 0200", Err: ber.ErrTruncated},
	{Input: "trailing-partial-header=0200 30", Err: ber.ErrTruncated},
	{Input: "length-overflow=04 88FFFFFFFFFFFFFFFF", Err: ber.ErrTruncated},
	{Input: "child-overruns-parent=3003 02020001", Err: ber.ErrTruncated},
}

// ExtendedDecodeTests contains test vectors for ber.Decode with Config.Extended.
var ExtendedDecodeTests = []struct {
	Input string
	Err   error
	Value string // String() of the first element's Value
}{
	{Input: "boolean=0101FF", Value: "true"},
	{Input: "boolean=010100", Value: "false"},
	{Input: "boolean-long=0102FFFF", Err: ber.ErrInvalidEncoding},
	{Input: "null=0500", Value: "NULL"},
	{Input: "null-nonempty=050100", Err: ber.ErrInvalidEncoding},
	{Input: "int-one-octet=020105", Value: "5"},
	{Input: "int-one-octet-negative=0201FF", Value: "-1"},
	{Input: "int-three-octets=0203FF0000", Value: "-65536"},
	{Input: "int-nine-octets=0209 010000000000000000", Value: "18446744073709551616"},
	{Input: "int-nine-octets-negative=0209 FF0000000000000000", Value: "-18446744073709551616"},
	{Input: "int-two-octets=02020102", Value: "258"},
	{Input: "enumerated=0A0102", Value: "2"},
	{Input: "enumerated-long=0A09 010000000000000000", Err: ber.ErrUnsupportedEncoding},
	{Input: "ascii=1603 616263", Value: "abc"},
	{Input: "ascii-invalid=1601 80", Err: ber.ErrInvalidEncoding},
	{Input: "numeric=1203 312033", Value: "1 3"},
	{Input: "numeric-invalid=1201 41", Err: ber.ErrInvalidEncoding},
	{Input: "visible=1A02 4142", Value: "AB"},
	{Input: "visible-invalid=1A01 0A", Err: ber.ErrInvalidEncoding},
	{Input: "teletex=1401 41", Err: ber.ErrUnsupportedType},
	{Input: "real=0900", Err: ber.ErrUnsupportedType},
}

// RsaSelfSignedCertificate is a DER-encoded self-signed X.509 certificate with an RSA key.
//
//go:embed rsa-selfsigned.der
var RsaSelfSignedCertificate []byte

// RsaSelfSignedCertificatePEM is RsaSelfSignedCertificate in PEM format.
//
//go:embed rsa-selfsigned.pem
var RsaSelfSignedCertificatePEM []byte
