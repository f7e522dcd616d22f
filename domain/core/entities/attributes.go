package entities

import "encoding/json"

// Decimal is an arbitrary-precision number kept in its canonical text form.
// It is rendered as a JSON string so no precision is lost.
type Decimal string

// MarshalJSON implements json.Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// Blob is binary data rendered as its UTF-8 decoded text
type Blob []byte

// MarshalJSON implements json.Marshaler
func (b Blob) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(b))
}
