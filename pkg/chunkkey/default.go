package chunkkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/njord/pkg/metadata"
)

// DefaultEncoding is the current chunk key encoding: a literal "c" marker
// followed by the coordinates, joined by the separator. A zero-dimensional
// chunk's key is exactly "c".
type DefaultEncoding struct {
	sep Separator
}

// NewDefaultEncoding constructs the encoding, validating the separator.
func NewDefaultEncoding(sep Separator) (*DefaultEncoding, error) {
	parsed, err := ParseSeparator(string(sep))
	if err != nil {
		return nil, err
	}
	return &DefaultEncoding{sep: parsed}, nil
}

func (e *DefaultEncoding) Name() string {
	return "default"
}

func (e *DefaultEncoding) Separator() Separator {
	return e.sep
}

// EncodeChunkKey joins "c" and the decimal coordinates with the separator.
func (e *DefaultEncoding) EncodeChunkKey(coords []int) string {
	var sb strings.Builder
	sb.WriteString("c")
	for _, c := range coords {
		sb.WriteString(string(e.sep))
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// DecodeChunkKey strips the leading marker and one following separator and
// parses the remaining components as integers.
func (e *DefaultEncoding) DecodeChunkKey(key string) ([]int, error) {
	if key == "c" {
		return []int{}, nil
	}
	rest := strings.TrimPrefix(key, "c")
	rest = strings.TrimPrefix(rest, string(e.sep))
	parts := strings.Split(rest, string(e.sep))
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

func (e *DefaultEncoding) ToDict() metadata.NamedConfiguration {
	return encodingDict("default", e.sep)
}
