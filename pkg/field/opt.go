// Package field provides a tri-state JSON field for partial updates:
// a field is either absent from the payload, an explicit null, or a value.
// Only explicitly provided fields produce a column assignment, which lets
// clients clear a column by sending null.
package field

import (
	"bytes"
	"encoding/json"
)

type Opt[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns an Opt carrying a value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{set: true, value: v}
}

// Null returns an Opt carrying an explicit null.
func Null[T any]() Opt[T] {
	return Opt[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload.
func (o Opt[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was an explicit null.
func (o Opt[T]) IsNull() bool { return o.set && o.null }

// Value returns the carried value; ok is false when absent or null.
func (o Opt[T]) Value() (value T, ok bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Ptr returns the value as a pointer, nil when absent or null.
func (o Opt[T]) Ptr() *T {
	if !o.set || o.null {
		return nil
	}
	v := o.value
	return &v
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
