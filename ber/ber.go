// Package ber decodes ASN.1 Basic Encoding Rules (BER) and Distinguished Encoding Rules (DER) structures.
//
// Input is a concatenation of TLV elements, such as a DER-encoded X.509 certificate.
// Decode turns it into a tree of Element, without an ASN.1 schema:
//   - SEQUENCE and SET are decoded recursively into child elements.
//   - Context-specific elements are treated as EXPLICIT wrappers and decoded recursively,
//     except tag [0] which is kept undecoded.
//   - Primitive universal types with a known decoder are decoded into a Value.
//   - Anything else is an error.
//
// Only the definite-length form and tag numbers below 31 are supported.
// Decoding stops at the first error, and no partial result is returned.
package ber

import "github.com/usnistgov/berdecode/core/logging"

var logger = logging.New("ber")
