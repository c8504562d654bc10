package ber

import "errors"

// Element represents a decoded TLV element.
//
// Wire and Payload alias the input buffer; decoded values do not.
type Element struct {
	Header

	// Wire is the complete TLV encoding, including header.
	Wire []byte
	// Payload is the TLV-VALUE.
	Payload []byte

	// Value is the decoded value of a primitive universal element.
	// It is nil for elements decoded into Children, and for context-specific tag [0].
	Value Value
	// Children contains the nested elements of a SEQUENCE, a SET, or a context-specific element.
	Children []Element
}

// Size returns encoded size.
func (element Element) Size() int {
	return len(element.Wire)
}

// HeaderSize returns encoded header size.
func (element Element) HeaderSize() int {
	return len(element.Wire) - len(element.Payload)
}

// Lookup returns the element at a path of child indices.
func Lookup(elements []Element, path ...int) (element *Element, ok bool) {
	for _, i := range path {
		if i < 0 || i >= len(elements) {
			return nil, false
		}
		element = &elements[i]
		elements = element.Children
	}
	return element, element != nil
}

// SkipChildren can be returned by a WalkFunc to skip the descendants of the current element.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each element visited by Walk.
// path contains the child indices leading to the element; it is reused between calls.
type WalkFunc func(path []int, element *Element) error

// Walk visits elements and their descendants depth-first, in encoding order.
// If fn returns an error other than SkipChildren, the walk stops and returns that error.
func Walk(elements []Element, fn WalkFunc) error {
	return walk(elements, nil, fn)
}

func walk(elements []Element, path []int, fn WalkFunc) error {
	for i := range elements {
		p := append(path, i)
		switch e := fn(p, &elements[i]); e {
		case nil:
			if e := walk(elements[i].Children, p, fn); e != nil {
				return e
			}
		case SkipChildren:
		default:
			return e
		}
	}
	return nil
}
