package service

import (
	"bytes"
	"encoding/json"
)

// OptionalString tells an absent JSON key apart from an explicit null.
// Set is true whenever the key was present.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Some returns a present OptionalString holding s
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns a present OptionalString holding null
func Null() OptionalString {
	return OptionalString{Set: true}
}
