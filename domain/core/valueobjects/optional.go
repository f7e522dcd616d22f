package valueobjects

import (
	"bytes"
	"encoding/json"
	"errors"
)

// OptionalString distinguishes a field that was absent from a JSON document
// from one that was present. A present field may still be empty, either as
// "" or as null.
type OptionalString struct {
	Present bool
	Value   string
}

// Some returns a present OptionalString holding value
func Some(value string) OptionalString {
	return OptionalString{Present: true, Value: value}
}

// IsEmpty reports whether the field was present but carried no value
func (o OptionalString) IsEmpty() bool {
	return o.Present && o.Value == ""
}

// HasValue reports whether the field was present with a non-empty value
func (o OptionalString) HasValue() bool {
	return o.Present && o.Value != ""
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// exists in the document, which is what marks the field as present.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("value must be a string")
	}
	o.Value = s
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
