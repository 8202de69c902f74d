// Package patch provides a presence-flagged optional value for partial
// updates.
//
// A Field has three states once decoded from a JSON object:
//
//	omitted           -> Set == false
//	"key": null       -> Set == true, Null == true
//	"key": <value>    -> Set == true, Value holds the decoded value
//
// Only Set fields are written by a partial update.
package patch

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a field explicitly set to v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Clear returns a field explicitly set to null.
func Clear[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// FromPtr maps nil to an explicit null and anything else to Some.
func FromPtr[T any](v *T) Field[T] {
	if v == nil {
		return Clear[T]()
	}
	return Some(*v)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Value = zero
		f.Null = true
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IsZero reports an omitted field, so `json:",omitzero"` drops it.
func (f Field[T]) IsZero() bool {
	return !f.Set
}

// Get returns the value and whether it carries one (set and not null).
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Set && !f.Null
}

// Ptr returns nil for omitted or null fields.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}
