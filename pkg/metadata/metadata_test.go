package metadata

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	config := map[string]any{"endian": "little"}

	parsed, err := Parse(NamedConfiguration{Name: "bytes", Configuration: config}, "bytes", true)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed["endian"] != "little" {
		t.Errorf("Parse returned %v", parsed)
	}

	// Optional configuration may be absent.
	parsed, err = Parse(NamedConfiguration{Name: "bytes"}, "bytes", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed != nil {
		t.Errorf("Expected nil configuration, got %v", parsed)
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		data    NamedConfiguration
		require bool
	}{
		{"missing name", NamedConfiguration{}, false},
		{"wrong name", NamedConfiguration{Name: "gzip"}, false},
		{"missing required configuration", NamedConfiguration{Name: "bytes"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.data, "bytes", tc.require); !errors.Is(err, ErrMalformedConfiguration) {
				t.Errorf("Expected ErrMalformedConfiguration, got %v", err)
			}
		})
	}
}

func TestStringField(t *testing.T) {
	config := map[string]any{"separator": "/", "level": 3}

	s, ok, err := StringField(config, "separator")
	if err != nil || !ok || s != "/" {
		t.Errorf("StringField(separator) = %q, %v, %v", s, ok, err)
	}

	_, ok, err = StringField(config, "absent")
	if err != nil || ok {
		t.Errorf("StringField(absent) = %v, %v", ok, err)
	}

	if _, _, err := StringField(config, "level"); !errors.Is(err, ErrMalformedConfiguration) {
		t.Errorf("Expected ErrMalformedConfiguration for non-string field, got %v", err)
	}
}
