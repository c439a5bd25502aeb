package buffer

import (
	"github.com/ssargent/njord/pkg/dtype"
)

// Prototype constructs buffers and typed array views from raw memory. The
// codec layer is handed a prototype through the ArraySpec so callers can
// substitute their own memory management.
type Prototype interface {
	// NewBuffer wraps raw bytes as a Buffer.
	NewBuffer(data []byte) *Buffer

	// NewNDArray views raw bytes as a typed array of the given shape and
	// byte order.
	NewNDArray(data []byte, dt dtype.DataType, shape []int, order dtype.Endian) (*NDArray, error)
}

type defaultPrototype struct{}

// DefaultPrototype returns the in-process prototype backed by plain byte
// slices.
func DefaultPrototype() Prototype {
	return defaultPrototype{}
}

func (defaultPrototype) NewBuffer(data []byte) *Buffer {
	return NewBuffer(data)
}

func (defaultPrototype) NewNDArray(data []byte, dt dtype.DataType, shape []int, order dtype.Endian) (*NDArray, error) {
	return NewNDArray(data, dt, shape, order)
}
