package buffer

import (
	"fmt"

	"github.com/ssargent/njord/pkg/dtype"
)

// ArraySpec describes one chunk's logical layout: its shape, element type
// and the prototype used to materialize decoded views.
type ArraySpec struct {
	Shape     []int
	DataType  dtype.DataType
	Prototype Prototype
}

// NewArraySpec validates and builds an ArraySpec. A nil prototype defaults
// to the in-process one.
func NewArraySpec(shape []int, dt dtype.DataType, proto Prototype) (ArraySpec, error) {
	for _, dim := range shape {
		if dim < 0 {
			return ArraySpec{}, fmt.Errorf("invalid shape %v: negative dimension", shape)
		}
	}
	if proto == nil {
		proto = DefaultPrototype()
	}
	return ArraySpec{
		Shape:     append([]int(nil), shape...),
		DataType:  dt,
		Prototype: proto,
	}, nil
}

// NumElements returns the chunk's element count.
func (s ArraySpec) NumElements() int {
	return NumElements(s.Shape)
}

// ByteLength returns the number of bytes the chunk occupies in row-major
// order.
func (s ArraySpec) ByteLength() int {
	return s.NumElements() * itemWidth(s.DataType)
}
