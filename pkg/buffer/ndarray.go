package buffer

import (
	"bytes"
	"fmt"

	"github.com/ssargent/njord/pkg/dtype"
)

// NDArray is a shaped, typed, byte-order-tagged view over a flat byte
// sequence in row-major order. Instances are immutable: reshaping and byte
// order conversion return new views, never modify the receiver.
type NDArray struct {
	data  []byte
	dt    dtype.DataType
	shape []int
	order dtype.Endian
}

// NewNDArray views data as an array of the given data type and shape. The
// byte length of data must equal the shape's element count times the item
// size (one byte per element for raw types). The order tag is only
// meaningful for multi-byte item sizes.
func NewNDArray(data []byte, dt dtype.DataType, shape []int, order dtype.Endian) (*NDArray, error) {
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("invalid shape %v: negative dimension", shape)
		}
	}
	want := NumElements(shape) * itemWidth(dt)
	if len(data) != want {
		return nil, fmt.Errorf("data length %d does not match shape %v of dtype %s (%d bytes)",
			len(data), shape, dt, want)
	}
	return &NDArray{data: data, dt: dt, shape: append([]int(nil), shape...), order: order}, nil
}

// Shape returns a copy of the array's dimensions. An empty shape denotes a
// zero-dimensional scalar.
func (a *NDArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// DataType returns the element type of the view.
func (a *NDArray) DataType() dtype.DataType {
	return a.dt
}

// ByteOrder returns the byte order the elements are stored in.
func (a *NDArray) ByteOrder() dtype.Endian {
	return a.order
}

// Len returns the total number of elements.
func (a *NDArray) Len() int {
	return NumElements(a.shape)
}

// Bytes returns the underlying row-major bytes. The slice is shared with
// the view and must not be modified.
func (a *NDArray) Bytes() []byte {
	return a.data
}

// Reshape returns a view of the same data with a new shape. The element
// count must be preserved.
func (a *NDArray) Reshape(shape []int) (*NDArray, error) {
	if NumElements(shape) != a.Len() {
		return nil, fmt.Errorf("cannot reshape %v (%d elements) into %v (%d elements)",
			a.shape, a.Len(), shape, NumElements(shape))
	}
	return &NDArray{data: a.data, dt: a.dt, shape: append([]int(nil), shape...), order: a.order}, nil
}

// WithByteOrder returns a view whose elements are stored in the requested
// byte order. When a conversion is needed the element bytes are swapped into
// a fresh copy; the receiver is never modified. Views over single-byte or
// raw types are returned unchanged.
func (a *NDArray) WithByteOrder(order dtype.Endian) *NDArray {
	if a.order == order || a.dt.ItemSize <= 1 {
		return a
	}
	swapped := make([]byte, len(a.data))
	size := a.dt.ItemSize
	for off := 0; off < len(a.data); off += size {
		for i := 0; i < size; i++ {
			swapped[off+i] = a.data[off+size-1-i]
		}
	}
	return &NDArray{data: swapped, dt: a.dt, shape: a.shape, order: order}
}

// Flatten wraps the array's row-major bytes as a Buffer.
func (a *NDArray) Flatten() *Buffer {
	return NewBuffer(a.data)
}

// Equal reports whether two views hold the same type, shape, byte order and
// bytes.
func (a *NDArray) Equal(b *NDArray) bool {
	if a.dt != b.dt || len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	if a.dt.HasByteOrder() && a.order != b.order {
		return false
	}
	return bytes.Equal(a.data, b.data)
}

// NumElements returns the element count of a shape. The empty shape is a
// zero-dimensional scalar and counts one element.
func NumElements(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}

// itemWidth is the storage width used for sizing: raw types occupy one byte
// per element.
func itemWidth(dt dtype.DataType) int {
	if dt.ItemSize == 0 {
		return 1
	}
	return dt.ItemSize
}
