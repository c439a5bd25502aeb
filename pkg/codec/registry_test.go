package codec

import (
	"errors"
	"testing"

	"github.com/ssargent/njord/pkg/metadata"
)

func TestRegistry_EndianAlias(t *testing.T) {
	// Metadata written by earlier releases names the bytes codec "endian";
	// both names must resolve to behaviorally identical codecs.
	config := map[string]any{"endian": "big"}

	viaBytes, err := FromDict(metadata.NamedConfiguration{Name: "bytes", Configuration: config})
	if err != nil {
		t.Fatalf("FromDict(bytes) failed: %v", err)
	}
	viaAlias, err := FromDict(metadata.NamedConfiguration{Name: "endian", Configuration: config})
	if err != nil {
		t.Fatalf("FromDict(endian) failed: %v", err)
	}

	if !viaBytes.(*BytesCodec).Equal(viaAlias.(*BytesCodec)) {
		t.Errorf("Alias resolved to a different codec: %+v != %+v", viaBytes, viaAlias)
	}
	if viaAlias.ToDict().Name != "bytes" {
		t.Errorf("Alias codec must serialize under the canonical name, got %q", viaAlias.ToDict().Name)
	}
}

func TestRegistry_CustomRegistration(t *testing.T) {
	r := NewRegistry()
	r.Register("bytes", bytesCodecFactory)
	r.Register("mybytes", bytesCodecFactory)

	c, err := r.FromDict(metadata.NamedConfiguration{Name: "mybytes"})
	if err != nil {
		t.Fatalf("FromDict failed: %v", err)
	}
	if _, ok := c.(*BytesCodec); !ok {
		t.Errorf("Expected a BytesCodec, got %T", c)
	}

	if _, err := r.FromDict(metadata.NamedConfiguration{Name: "zstd"}); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Expected ErrUnknownCodec, got %v", err)
	}
	if _, err := r.FromDict(metadata.NamedConfiguration{}); !errors.Is(err, metadata.ErrMalformedConfiguration) {
		t.Errorf("Expected ErrMalformedConfiguration for missing name, got %v", err)
	}
}
