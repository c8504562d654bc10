package ber

import (
	"errors"
	"fmt"
)

// Error conditions.
var (
	ErrTruncated           = errors.New("truncated input")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrUnsupportedType     = errors.New("unsupported type")
	ErrInvalidEncoding     = errors.New("invalid encoding")
	ErrDepthExceeded       = errors.New("nesting depth exceeded")
	ErrTooManyElements     = errors.New("too many elements")
	ErrConfig              = errors.New("invalid config")
)

// DecodeError describes a decoding failure.
// It unwraps to one of the error conditions above.
type DecodeError struct {
	// Offset is the position of the failing element in the top-level input.
	Offset int
	// Header is the header of the failing element, if it was read.
	Header *Header
	// Err is the underlying error.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Header == nil {
		return fmt.Sprintf("ber: offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("ber: offset %d %s: %v", e.Offset, e.Header, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(offset int, h *Header, e error) error {
	var de *DecodeError
	if errors.As(e, &de) {
		return e
	}
	return &DecodeError{Offset: offset, Header: h, Err: e}
}
