// Package pipeline composes a codec, a chunk key encoding and a chunk
// store into the read/write path for one array's chunks. The codec work is
// pure and synchronous; all asynchrony and cancellation live here, at chunk
// granularity.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/ssargent/njord/pkg/buffer"
	"github.com/ssargent/njord/pkg/chunkkey"
	"github.com/ssargent/njord/pkg/codec"
	"github.com/ssargent/njord/pkg/store"
)

// Config assembles a pipeline. Codec, Keys and Store are required; Spec
// describes the chunks this pipeline carries.
type Config struct {
	Codec codec.ArrayBytesCodec
	Keys  chunkkey.ChunkKeyEncoding
	Store store.ChunkStore
	Spec  buffer.ArraySpec

	// Concurrency bounds WriteChunks workers; 0 means 4.
	Concurrency int
}

// Chunk pairs grid coordinates with the chunk's typed data for batch
// writes.
type Chunk struct {
	Coords []int
	Array  *buffer.NDArray
}

// Pipeline moves chunks between their typed in-memory form and the store.
// It is immutable after construction and safe for concurrent use.
type Pipeline struct {
	codec   codec.ArrayBytesCodec
	keys    chunkkey.ChunkKeyEncoding
	store   store.ChunkStore
	spec    buffer.ArraySpec
	workers int
}

// New validates the configuration and specializes the codec for the
// array's spec. A codec that cannot serve the spec (for example a bytes
// codec without a byte order over a multi-byte dtype) fails here, not on
// first use.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Codec == nil || cfg.Keys == nil || cfg.Store == nil {
		return nil, fmt.Errorf("pipeline requires a codec, a key encoding and a store")
	}
	if cfg.Spec.Prototype == nil {
		cfg.Spec.Prototype = buffer.DefaultPrototype()
	}
	evolved, err := cfg.Codec.EvolveFromArraySpec(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("codec cannot serve array spec: %w", err)
	}
	abc, ok := evolved.(codec.ArrayBytesCodec)
	if !ok {
		return nil, fmt.Errorf("evolved codec %q is not an array/bytes codec", evolved.ToDict().Name)
	}
	workers := cfg.Concurrency
	if workers <= 0 {
		workers = 4
	}
	return &Pipeline{
		codec:   abc,
		keys:    cfg.Keys,
		store:   cfg.Store,
		spec:    cfg.Spec,
		workers: workers,
	}, nil
}

// Spec returns the chunk layout this pipeline carries.
func (p *Pipeline) Spec() buffer.ArraySpec {
	return p.spec
}

// Codec returns the evolved array/bytes codec.
func (p *Pipeline) Codec() codec.ArrayBytesCodec {
	return p.codec
}

// Keys returns the chunk key encoding.
func (p *Pipeline) Keys() chunkkey.ChunkKeyEncoding {
	return p.keys
}

// WriteChunk encodes one chunk and stores it under its grid coordinates.
func (p *Pipeline) WriteChunk(ctx context.Context, coords []int, array *buffer.NDArray) error {
	if err := p.checkCoords(coords); err != nil {
		return err
	}
	encoded, err := p.codec.EncodeSingle(array, p.spec)
	if err != nil {
		return fmt.Errorf("failed to encode chunk %v: %w", coords, err)
	}
	return p.store.Put(ctx, p.keys.EncodeChunkKey(coords), encoded.Bytes())
}

// ReadChunk fetches and decodes the chunk at the given grid coordinates.
func (p *Pipeline) ReadChunk(ctx context.Context, coords []int) (*buffer.NDArray, error) {
	if err := p.checkCoords(coords); err != nil {
		return nil, err
	}
	data, err := p.store.Get(ctx, p.keys.EncodeChunkKey(coords))
	if err != nil {
		return nil, err
	}
	array, err := p.codec.DecodeSingle(p.spec.Prototype.NewBuffer(data), p.spec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chunk %v: %w", coords, err)
	}
	return array, nil
}

// DeleteChunk removes the chunk at the given grid coordinates.
func (p *Pipeline) DeleteChunk(ctx context.Context, coords []int) error {
	if err := p.checkCoords(coords); err != nil {
		return err
	}
	return p.store.Delete(ctx, p.keys.EncodeChunkKey(coords))
}

// ListChunks enumerates stored keys and decodes them back to grid
// coordinates.
func (p *Pipeline) ListChunks(ctx context.Context) ([][]int, error) {
	keys, err := p.store.List(ctx, "")
	if err != nil {
		return nil, err
	}
	coords := make([][]int, 0, len(keys))
	for _, key := range keys {
		c, err := p.keys.DecodeChunkKey(key)
		if err != nil {
			return nil, fmt.Errorf("stored key %q does not match the key encoding: %w", key, err)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// WriteChunks writes a batch of chunks with bounded concurrency. The first
// error wins and cancellation is honored between chunks, never inside a
// single encode.
func (p *Pipeline) WriteChunks(ctx context.Context, chunks []Chunk) error {
	work := make(chan Chunk)
	var wg sync.WaitGroup
	var mutex sync.Mutex
	var firstErr error

	setErr := func(err error) {
		mutex.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mutex.Unlock()
	}

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunk := range work {
				if err := ctx.Err(); err != nil {
					setErr(err)
					continue
				}
				if err := p.WriteChunk(ctx, chunk.Coords, chunk.Array); err != nil {
					setErr(err)
				}
			}
		}()
	}

	for _, chunk := range chunks {
		work <- chunk
	}
	close(work)
	wg.Wait()
	return firstErr
}

func (p *Pipeline) checkCoords(coords []int) error {
	if len(coords) != len(p.spec.Shape) {
		return fmt.Errorf("coordinates %v do not match array rank %d", coords, len(p.spec.Shape))
	}
	for _, c := range coords {
		if c < 0 {
			return fmt.Errorf("coordinates %v contain a negative component", coords)
		}
	}
	return nil
}
