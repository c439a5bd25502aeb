//go:build fuzz
// +build fuzz

package chunkkey

import (
	"reflect"
	"testing"
)

// FuzzDefaultEncoding_RoundTrip checks that any coordinate slice survives
// encode/decode under both separators.
func FuzzDefaultEncoding_RoundTrip(f *testing.F) {
	f.Add(uint(0), uint(0), uint(0), 1)
	f.Add(uint(1), uint(2), uint(3), 3)
	f.Add(uint(12), uint(345), uint(6), 2)

	f.Fuzz(func(t *testing.T, a, b, c uint, rank int) {
		if rank < 0 || rank > 3 {
			t.Skip("rank out of range")
		}
		coords := []int{int(a % 1000000), int(b % 1000000), int(c % 1000000)}[:rank]

		for _, sep := range []Separator{DotSeparator, SlashSeparator} {
			e, err := NewDefaultEncoding(sep)
			if err != nil {
				t.Fatalf("NewDefaultEncoding failed: %v", err)
			}
			got, err := e.DecodeChunkKey(e.EncodeChunkKey(coords))
			if err != nil {
				t.Fatalf("Round trip failed for %v with %q: %v", coords, sep, err)
			}
			if rank == 0 && len(got) == 0 {
				continue
			}
			if !reflect.DeepEqual(got, coords) {
				t.Errorf("Round trip %v -> %v with separator %q", coords, got, sep)
			}
		}
	})
}

// FuzzV2Encoding_Decode checks the decoder never panics and only accepts
// keys it can fully parse.
func FuzzV2Encoding_Decode(f *testing.F) {
	f.Add("0")
	f.Add("1.4")
	f.Add("1/2/3")
	f.Add("not-a-key")

	f.Fuzz(func(t *testing.T, key string) {
		for _, sep := range []Separator{DotSeparator, SlashSeparator} {
			e, err := NewV2Encoding(sep)
			if err != nil {
				t.Fatalf("NewV2Encoding failed: %v", err)
			}
			coords, err := e.DecodeChunkKey(key)
			if err != nil {
				continue
			}
			// Decoded coordinates are stable under re-encoding: the key may
			// canonicalize (e.g. "00" -> "0") but the coordinates must not.
			again, err := e.DecodeChunkKey(e.EncodeChunkKey(coords))
			if err != nil {
				t.Fatalf("Re-decode failed for %q: %v", key, err)
			}
			if !reflect.DeepEqual(again, coords) {
				t.Errorf("Coordinates unstable: %q -> %v -> %v with separator %q", key, coords, again, sep)
			}
		}
	})
}
