package testenv

import (
	"encoding/json"
	"strings"
)

// FromJSON unmarshals a JSON document into ptr.
// Unknown fields and trailing data are rejected.
// Error causes panic.
func FromJSON(j string, ptr any) {
	decoder := json.NewDecoder(strings.NewReader(j))
	decoder.DisallowUnknownFields()
	if e := decoder.Decode(ptr); e != nil {
		panic(e)
	}
	if decoder.More() {
		panic("trailing data after JSON document")
	}
}
