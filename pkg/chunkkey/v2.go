package chunkkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/njord/pkg/metadata"
)

// V2Encoding is the legacy chunk key encoding: coordinates joined by the
// separator with no marker. A zero-dimensional chunk encodes to the literal
// "0" because some storage backends reject empty keys.
//
// The zero-dimensional case does not round-trip: DecodeChunkKey("0") yields
// [0], not the empty slice. This asymmetry is preserved for compatibility
// with stores written by earlier releases; callers enumerating keys of a
// zero-dimensional array must account for it.
type V2Encoding struct {
	sep Separator
}

// NewV2Encoding constructs the encoding, validating the separator.
func NewV2Encoding(sep Separator) (*V2Encoding, error) {
	parsed, err := ParseSeparator(string(sep))
	if err != nil {
		return nil, err
	}
	return &V2Encoding{sep: parsed}, nil
}

func (e *V2Encoding) Name() string {
	return "v2"
}

func (e *V2Encoding) Separator() Separator {
	return e.sep
}

// EncodeChunkKey joins the decimal coordinates with the separator, emitting
// "0" for the empty coordinate slice.
func (e *V2Encoding) EncodeChunkKey(coords []int) string {
	if len(coords) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(string(e.sep))
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// DecodeChunkKey splits on the separator and parses each component as an
// integer. See the type comment for the zero-dimensional asymmetry.
func (e *V2Encoding) DecodeChunkKey(key string) ([]int, error) {
	parts := strings.Split(key, string(e.sep))
	coords := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid chunk key %q: component %q is not an integer", key, part)
		}
		coords[i] = n
	}
	return coords, nil
}

func (e *V2Encoding) ToDict() metadata.NamedConfiguration {
	return encodingDict("v2", e.sep)
}
