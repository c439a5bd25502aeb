// Package metadata holds the serialized {name, configuration} form shared by
// codecs and chunk key encodings.
package metadata

import (
	"errors"
	"fmt"
)

// ErrMalformedConfiguration indicates a named configuration whose shape does
// not match what the consumer requires.
var ErrMalformedConfiguration = errors.New("malformed named configuration")

// NamedConfiguration is the canonical serialized form for codecs and chunk
// key encodings. Configuration is omitted when there is nothing non-default
// to report.
type NamedConfiguration struct {
	Name          string         `json:"name" yaml:"name"`
	Configuration map[string]any `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// Parse validates a named configuration against an expected name and returns
// its configuration mapping. When requireConfiguration is set, an absent
// configuration is an error; otherwise a nil mapping is returned for the
// consumer to default internally.
func Parse(data NamedConfiguration, expectedName string, requireConfiguration bool) (map[string]any, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedConfiguration)
	}
	if data.Name != expectedName {
		return nil, fmt.Errorf("%w: expected name %q, got %q", ErrMalformedConfiguration, expectedName, data.Name)
	}
	if data.Configuration == nil && requireConfiguration {
		return nil, fmt.Errorf("%w: %q requires a configuration", ErrMalformedConfiguration, expectedName)
	}
	return data.Configuration, nil
}

// StringField extracts a string-valued field from a configuration mapping.
func StringField(config map[string]any, field string) (string, bool, error) {
	raw, ok := config[field]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: field %q must be a string, got %T", ErrMalformedConfiguration, field, raw)
	}
	return s, true, nil
}
