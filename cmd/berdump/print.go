package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/math"
	"github.com/usnistgov/berdecode/ber"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var formats = map[string]bool{
	formatText: true,
	formatJSON: true,
}

// printer writes decoded elements of one document.
type printer interface {
	Print(doc document, elements []ber.Element) error
	Flush() error
}

func newPrinter(w io.Writer, cfg dumpConfig) printer {
	if cfg.Format == formatJSON {
		return &jsonPrinter{w: w, maxHex: cfg.MaxHex}
	}
	return &textPrinter{w: w, maxHex: cfg.MaxHex}
}

// hexString renders bytes as uppercase hexadecimal, keeping at most maxHex octets unless maxHex is zero.
func hexString(b []byte, maxHex int) string {
	if maxHex <= 0 {
		return fmt.Sprintf("%X", b)
	}
	n := math.MinInt(len(b), maxHex)
	s := fmt.Sprintf("%X", b[:n])
	if n < len(b) {
		s += fmt.Sprintf("...(%d octets)", len(b))
	}
	return s
}

func tagText(h ber.Header) string {
	if h.Class == ber.ClassUniversal {
		return h.UniversalType().String()
	}
	return strconv.Itoa(int(h.Tag))
}

// valueText renders a decoded value with a keyword naming its type.
func valueText(v ber.Value, maxHex int) string {
	switch v := v.(type) {
	case ber.Integer, ber.BigInteger:
		return "INTEGER " + v.String()
	case ber.Enumerated:
		return "ENUMERATED " + v.String()
	case ber.Boolean:
		return "BOOLEAN " + v.String()
	case ber.Null:
		return "NULL"
	case ber.ObjectIdentifier:
		return "OID " + oidLabel(v)
	case ber.OctetString:
		return "OCTETS " + hexString(v, maxHex)
	case ber.BitString:
		if unused, ok := v.UnusedBits(); ok {
			return fmt.Sprintf("BITS unused=%d %s", unused, hexString(v.Bits(), maxHex))
		}
		return "BITS " + hexString(v, maxHex)
	}
	return strings.ToUpper(v.UniversalType().String()) + " " + strconv.Quote(v.String())
}

type textPrinter struct {
	w      io.Writer
	maxHex int
}

func (p *textPrinter) Print(doc document, elements []ber.Element) (e error) {
	if doc.Label != "" {
		if _, e = fmt.Fprintf(p.w, "# %s\n", doc.Label); e != nil {
			return e
		}
	}
	return ber.Walk(elements, func(path []int, element *ber.Element) error {
		indent := strings.Repeat("  ", len(path)-1)
		line := fmt.Sprintf("%sclass %s style %s tag %s length %d",
			indent, element.Class, element.Style, tagText(element.Header), element.Length)
		if element.Value != nil {
			line += " : " + valueText(element.Value, p.maxHex)
		}
		_, e := fmt.Fprintln(p.w, line)
		return e
	})
}

func (textPrinter) Flush() error {
	return nil
}

// jsonElement is the JSON representation of ber.Element.
type jsonElement struct {
	Class    string        `json:"class"`
	Style    string        `json:"style"`
	Tag      uint8         `json:"tag"`
	Type     string        `json:"type,omitempty"`
	Length   int           `json:"length"`
	Value    any           `json:"value,omitempty"`
	Children []jsonElement `json:"children,omitempty"`
}

// jsonDocument is the JSON representation of one input document.
type jsonDocument struct {
	Label    string        `json:"label,omitempty"`
	Elements []jsonElement `json:"elements"`
}

func makeJSONElements(elements []ber.Element, maxHex int) (list []jsonElement) {
	list = []jsonElement{}
	for _, element := range elements {
		j := jsonElement{
			Class:  element.Class.String(),
			Style:  element.Style.String(),
			Tag:    element.Tag,
			Length: element.Length,
		}
		if element.Class == ber.ClassUniversal {
			j.Type = element.UniversalType().String()
		}
		if element.Value != nil {
			j.Value = jsonValue(element.Value, maxHex)
		}
		if len(element.Children) > 0 {
			j.Children = makeJSONElements(element.Children, maxHex)
		}
		list = append(list, j)
	}
	return list
}

func jsonValue(v ber.Value, maxHex int) any {
	switch v := v.(type) {
	case ber.Integer:
		return int64(v)
	case ber.Enumerated:
		return int64(v)
	case ber.BigInteger:
		return json.Number(v.String())
	case ber.Boolean:
		return bool(v)
	case ber.Null:
		return nil
	case ber.OctetString:
		return hexString(v, maxHex)
	case ber.BitString:
		return hexString(v, maxHex)
	}
	return v.String()
}

type jsonPrinter struct {
	w      io.Writer
	maxHex int
	docs   []jsonDocument
}

func (p *jsonPrinter) Print(doc document, elements []ber.Element) error {
	p.docs = append(p.docs, jsonDocument{
		Label:    doc.Label,
		Elements: makeJSONElements(elements, p.maxHex),
	})
	return nil
}

func (p *jsonPrinter) Flush() error {
	if p.docs == nil {
		p.docs = []jsonDocument{}
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.docs)
}
