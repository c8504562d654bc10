package main

import (
	"bytes"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Input formats.
const (
	inputAuto = "auto"
	inputDER  = "der"
	inputPEM  = "pem"
	inputHex  = "hex"
)

// document is one decodable unit of input.
type document struct {
	// Label identifies the document, such as PEM block type.
	Label string
	Wire  []byte
}

type inputReader func(body []byte) ([]document, error)

var inputReaders = map[string]inputReader{
	inputAuto: readAuto,
	inputDER:  readDER,
	inputPEM:  readPEM,
	inputHex:  readHex,
}

var errNoPEM = errors.New("no PEM block found")

func readDER(body []byte) ([]document, error) {
	return []document{{Wire: body}}, nil
}

func readPEM(body []byte) (docs []document, e error) {
	for {
		var block *pem.Block
		block, body = pem.Decode(body)
		if block == nil {
			break
		}
		docs = append(docs, document{Label: block.Type, Wire: block.Bytes})
	}
	if len(docs) == 0 {
		return nil, errNoPEM
	}
	return docs, nil
}

func readHex(body []byte) ([]document, error) {
	s := strings.Map(func(ch rune) rune {
		if unicode.IsSpace(ch) || ch == ':' {
			return -1
		}
		return ch
	}, string(body))
	wire, e := hex.DecodeString(s)
	if e != nil {
		return nil, fmt.Errorf("hex input: %w", e)
	}
	return []document{{Wire: wire}}, nil
}

func isHexText(body []byte) bool {
	if len(bytes.TrimSpace(body)) == 0 {
		return false
	}
	for _, b := range body {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F', b == ':':
		case unicode.IsSpace(rune(b)):
		default:
			return false
		}
	}
	return true
}

// readAuto recognizes PEM and hexadecimal text, and treats anything else as DER.
func readAuto(body []byte) ([]document, error) {
	switch {
	case bytes.Contains(body, []byte("-----BEGIN ")):
		return readPEM(body)
	case isHexText(body):
		return readHex(body)
	}
	return readDER(body)
}
