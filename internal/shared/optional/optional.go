// Package optional provides a JSON field wrapper that remembers whether the
// field was present in the decoded document.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a field of a partial update document.
//
// Set reports whether the key appeared in the payload at all. Null reports
// whether it appeared with a JSON null. When Set is false the field must be
// left untouched by whoever applies the update.
type Value[T any] struct {
	Val  T
	Set  bool
	Null bool
}

// Of returns a present, non-null Value.
func Of[T any](v T) Value[T] {
	return Value[T]{Val: v, Set: true}
}

// Null returns a present Value carrying an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}

// UnmarshalJSON marks the value as present. encoding/json calls it for
// value-typed fields even when the input is a literal null.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.Val = zero
		v.Null = true
		return nil
	}
	v.Null = false
	return json.Unmarshal(data, &v.Val)
}

// MarshalJSON writes null for absent or null values.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Set || v.Null {
		return []byte("null"), nil
	}
	return json.Marshal(v.Val)
}

// Ptr returns nil for a null value and a pointer to a copy otherwise.
func (v Value[T]) Ptr() *T {
	if v.Null {
		return nil
	}
	out := v.Val
	return &out
}
