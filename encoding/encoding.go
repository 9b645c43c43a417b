// Package encoding converts property values to and from the byte arrays the
// store adapters move around. The default is JSON; swap BlobMarshaler if the
// host application needs another wire form.
package encoding

import (
	"encoding/json"
)

// Marshaler interface specifies encoding to byte array and back to the object.
type Marshaler interface {
	// Encodes any object to byte array.
	Marshal(v any) ([]byte, error)
	// Decodes byte array back to its Object type.
	Unmarshal(data []byte, v any) error
}

// Global Default marshaller.
var DefaultMarshaler = NewMarshaler()

// Global BlobMarshaler takes care of packing and unpacking property values
// to/from byte array. You can replace with your desired Marshaler
// implementation if needed. Defaults to use JSON Marshal.
var BlobMarshaler = DefaultMarshaler

type defaultMarshaler struct{}

// Returns the default marshaller which uses the golang's json package.
func NewMarshaler() Marshaler {
	return &defaultMarshaler{}
}

// Encodes any object to a byte array.
func (m defaultMarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decodes a byte array back to its Object type.
func (m defaultMarshaler) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal encodes v via BlobMarshaler, passing byte arrays through untouched.
func Marshal[T any](v T) ([]byte, error) {
	switch ba := any(v).(type) {
	case []byte:
		return ba, nil
	case *[]byte:
		return *ba, nil
	default:
		return BlobMarshaler.Marshal(v)
	}
}

// Unmarshal decodes data via BlobMarshaler, passing byte arrays through untouched.
func Unmarshal[T any](data []byte, v *T) error {
	switch target := any(v).(type) {
	case *[]byte:
		*target = data
		return nil
	default:
		return BlobMarshaler.Unmarshal(data, v)
	}
}
