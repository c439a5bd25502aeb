package codec

import (
	"errors"

	"github.com/ssargent/njord/pkg/buffer"
	"github.com/ssargent/njord/pkg/metadata"
)

// Errors
var (
	// ErrUnknownCodec is returned when a named configuration refers to a
	// codec no registry knows about.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrMissingEndian is returned when a multi-byte data type is used with
	// a codec that has no byte order configured.
	ErrMissingEndian = errors.New("endian must be specified for multi-byte data types")

	// ErrShapeMismatch is returned when decoded bytes cannot be shaped into
	// the chunk's declared shape.
	ErrShapeMismatch = errors.New("decoded element count does not match chunk shape")
)

// Codec is a reversible transformation applied to one chunk's data.
// Implementations are immutable values; every method is a pure function and
// safe for concurrent use.
type Codec interface {
	// IsFixedSize reports whether the encoded length is a pure function of
	// the input length, independent of content.
	IsFixedSize() bool

	// ComputeEncodedSize returns the encoded byte length for an input of
	// inputLength bytes under the given chunk spec.
	ComputeEncodedSize(inputLength int, spec buffer.ArraySpec) (int, error)

	// EvolveFromArraySpec specializes the codec for a specific array. It
	// returns the receiver when no change is needed, a new instance when
	// the spec forces one, or an error when the codec cannot serve the
	// spec.
	EvolveFromArraySpec(spec buffer.ArraySpec) (Codec, error)

	// ToDict returns the codec's canonical serialized form. Configuration
	// is omitted when there are no non-default parameters to report.
	ToDict() metadata.NamedConfiguration
}

// ArrayBytesCodec converts between a chunk's typed array form and its byte
// form. It sits at the array/bytes boundary of a codec pipeline.
type ArrayBytesCodec interface {
	Codec

	// DecodeSingle reinterprets encoded bytes as a typed array shaped per
	// the chunk spec.
	DecodeSingle(chunk *buffer.Buffer, spec buffer.ArraySpec) (*buffer.NDArray, error)

	// EncodeSingle flattens a typed array into its canonical byte form.
	// The caller's array is never modified.
	EncodeSingle(array *buffer.NDArray, spec buffer.ArraySpec) (*buffer.Buffer, error)
}
