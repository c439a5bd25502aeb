package codec

import (
	"fmt"

	"github.com/ssargent/njord/pkg/buffer"
	"github.com/ssargent/njord/pkg/dtype"
	"github.com/ssargent/njord/pkg/metadata"
)

// BytesCodec reinterprets raw bytes as typed array data and back, honoring
// a configured byte order. It is the array/bytes stage of every pipeline.
//
// A BytesCodec without a byte order is only valid for raw (item size zero)
// data types; EvolveFromArraySpec enforces this per array.
type BytesCodec struct {
	endian    dtype.Endian
	hasEndian bool
}

// NewBytesCodec returns a bytes codec using the host platform's native byte
// order.
func NewBytesCodec() *BytesCodec {
	return &BytesCodec{endian: dtype.NativeEndian(), hasEndian: true}
}

// NewBytesCodecWithEndian returns a bytes codec with an explicit byte
// order. The order is validated the same way string input is.
func NewBytesCodecWithEndian(endian dtype.Endian) (*BytesCodec, error) {
	parsed, err := dtype.ParseEndian(string(endian))
	if err != nil {
		return nil, err
	}
	return &BytesCodec{endian: parsed, hasEndian: true}, nil
}

// NewRawBytesCodec returns a bytes codec with no byte order, usable only
// with byte-order-agnostic data types.
func NewRawBytesCodec() *BytesCodec {
	return &BytesCodec{}
}

// bytesCodecFactory builds a BytesCodec from a named configuration's
// configuration mapping. An absent mapping or absent endian field yields a
// codec with no byte order, matching the serialized form ToDict emits for
// that case.
func bytesCodecFactory(config map[string]any) (Codec, error) {
	if config == nil {
		return NewRawBytesCodec(), nil
	}
	s, ok, err := metadata.StringField(config, "endian")
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewRawBytesCodec(), nil
	}
	endian, err := dtype.ParseEndian(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", metadata.ErrMalformedConfiguration, err)
	}
	return &BytesCodec{endian: endian, hasEndian: true}, nil
}

// ParseBytesCodec builds a BytesCodec from its full named configuration,
// validating the name. The configuration key is optional.
func ParseBytesCodec(data metadata.NamedConfiguration) (*BytesCodec, error) {
	config, err := metadata.Parse(data, "bytes", false)
	if err != nil {
		return nil, err
	}
	c, err := bytesCodecFactory(config)
	if err != nil {
		return nil, err
	}
	return c.(*BytesCodec), nil
}

// Endian returns the configured byte order, if any.
func (c *BytesCodec) Endian() (dtype.Endian, bool) {
	return c.endian, c.hasEndian
}

// Equal reports value equality with another bytes codec.
func (c *BytesCodec) Equal(other *BytesCodec) bool {
	return *c == *other
}

// IsFixedSize is always true: the encoded form adds no framing.
func (c *BytesCodec) IsFixedSize() bool {
	return true
}

// ComputeEncodedSize returns inputLength unchanged; callers can pre-size
// buffers exactly.
func (c *BytesCodec) ComputeEncodedSize(inputLength int, _ buffer.ArraySpec) (int, error) {
	if inputLength < 0 {
		return 0, fmt.Errorf("negative input length %d", inputLength)
	}
	return inputLength, nil
}

// EvolveFromArraySpec validates the codec against a specific array. For
// byte-order-agnostic types any configured endian is cleared; for every
// other type an endian is mandatory.
func (c *BytesCodec) EvolveFromArraySpec(spec buffer.ArraySpec) (Codec, error) {
	if spec.DataType.ItemSize == 0 {
		if c.hasEndian {
			return NewRawBytesCodec(), nil
		}
		return c, nil
	}
	if !c.hasEndian {
		return nil, fmt.Errorf("%w (dtype %s)", ErrMissingEndian, spec.DataType)
	}
	return c, nil
}

// DecodeSingle views encoded bytes as a typed array shaped per spec. The
// returned view shares the input buffer's memory.
func (c *BytesCodec) DecodeSingle(chunk *buffer.Buffer, spec buffer.ArraySpec) (*buffer.NDArray, error) {
	order := c.endian
	if spec.DataType.ItemSize > 0 {
		if !c.hasEndian {
			return nil, fmt.Errorf("%w (dtype %s)", ErrMissingEndian, spec.DataType)
		}
	} else {
		// Raw types carry no byte order; the tag is inert.
		order = dtype.NativeEndian()
	}

	data := chunk.Bytes()
	width := spec.DataType.ItemSize
	if width == 0 {
		width = 1
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte elements",
			ErrShapeMismatch, len(data), width)
	}
	flat, err := spec.Prototype.NewNDArray(data, spec.DataType, []int{len(data) / width}, order)
	if err != nil {
		return nil, err
	}
	if flat.Len() != spec.NumElements() {
		return nil, fmt.Errorf("%w: got %d elements, chunk shape %v needs %d",
			ErrShapeMismatch, flat.Len(), spec.Shape, spec.NumElements())
	}
	return flat.Reshape(spec.Shape)
}

// EncodeSingle flattens a typed array into row-major bytes. When the
// array's byte order differs from the codec's, a converted copy is encoded;
// the caller's array is never modified.
func (c *BytesCodec) EncodeSingle(array *buffer.NDArray, spec buffer.ArraySpec) (*buffer.Buffer, error) {
	if array.DataType().ItemSize > 1 && c.hasEndian && array.ByteOrder() != c.endian {
		array = array.WithByteOrder(c.endian)
	}
	return spec.Prototype.NewBuffer(array.Flatten().Bytes()), nil
}

// ToDict returns the canonical serialized form. The configuration key is
// omitted when no endian is configured.
func (c *BytesCodec) ToDict() metadata.NamedConfiguration {
	out := metadata.NamedConfiguration{Name: "bytes"}
	if c.hasEndian {
		out.Configuration = map[string]any{"endian": string(c.endian)}
	}
	return out
}
