// Package chunkkey maps N-dimensional chunk grid coordinates to storage
// keys and back. Two historical encodings exist: the current "default"
// encoding with a leading "c" marker, and the legacy "v2" encoding without
// one. Both are immutable after construction and safe for concurrent use.
package chunkkey

import (
	"errors"
	"fmt"

	"github.com/ssargent/njord/pkg/metadata"
)

// Errors
var (
	// ErrInvalidSeparator is returned for any separator other than "." or
	// "/".
	ErrInvalidSeparator = errors.New("separator must be \".\" or \"/\"")

	// ErrUnknownEncoding is returned when a named configuration refers to
	// an encoding this package does not know.
	ErrUnknownEncoding = errors.New("unknown chunk key encoding")
)

// Separator joins coordinate components within a storage key.
type Separator string

const (
	DotSeparator   Separator = "."
	SlashSeparator Separator = "/"
)

// ParseSeparator validates a separator string.
func ParseSeparator(s string) (Separator, error) {
	switch Separator(s) {
	case DotSeparator, SlashSeparator:
		return Separator(s), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSeparator, s)
	}
}

// ChunkKeyEncoding converts between chunk grid coordinates and storage
// keys. Coordinates are one non-negative integer per array dimension; the
// empty slice denotes a zero-dimensional (scalar) chunk.
type ChunkKeyEncoding interface {
	// Name returns the encoding's serialized tag ("default" or "v2").
	Name() string

	// Separator returns the configured component separator.
	Separator() Separator

	// EncodeChunkKey maps chunk grid coordinates to a storage key.
	EncodeChunkKey(coords []int) string

	// DecodeChunkKey maps a storage key back to chunk grid coordinates.
	DecodeChunkKey(key string) ([]int, error)

	// ToDict returns the encoding's canonical serialized form.
	ToDict() metadata.NamedConfiguration
}

// FromDict resolves a named configuration to a chunk key encoding. An
// absent configuration defaults the separator to "/" for "default" and "."
// for "v2".
func FromDict(data metadata.NamedConfiguration) (ChunkKeyEncoding, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("%w: missing name", metadata.ErrMalformedConfiguration)
	}
	sep, found, err := separatorFromConfig(data.Configuration)
	if err != nil {
		return nil, err
	}
	switch data.Name {
	case "default":
		if !found {
			sep = SlashSeparator
		}
		return NewDefaultEncoding(sep)
	case "v2":
		if !found {
			sep = DotSeparator
		}
		return NewV2Encoding(sep)
	default:
		return nil, fmt.Errorf("%w: got %q, expected one of (\"default\", \"v2\")", ErrUnknownEncoding, data.Name)
	}
}

func separatorFromConfig(config map[string]any) (Separator, bool, error) {
	s, ok, err := metadata.StringField(config, "separator")
	if err != nil || !ok {
		return "", false, err
	}
	sep, err := ParseSeparator(s)
	if err != nil {
		return "", false, err
	}
	return sep, true, nil
}

func encodingDict(name string, sep Separator) metadata.NamedConfiguration {
	return metadata.NamedConfiguration{
		Name:          name,
		Configuration: map[string]any{"separator": string(sep)},
	}
}
