// internal/models/field.go
package models

import (
	"bytes"
	"encoding/json"
)

// Field is a PATCH field: absent, explicitly null, or holding a value.
// Absent fields are skipped when marshalled with `omitzero`.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](value T) Field[T] {
	return Field[T]{Set: true, Value: value}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// FromPtr maps nil to an explicit null.
func FromPtr[T any](value *T) Field[T] {
	if value == nil {
		return Null[T]()
	}
	return Some(*value)
}

func (f Field[T]) IsZero() bool {
	return !f.Set
}

// Ptr returns nil for absent or null fields.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}
