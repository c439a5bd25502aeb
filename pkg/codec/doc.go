// Package codec converts typed array chunks to canonical on-disk byte
// sequences and back. This is the array/bytes boundary of NjordDB's chunk
// pipeline.
//
// # Codecs
//
// A Codec is a reversible, pure transformation over one chunk. The concrete
// codec shipped here is BytesCodec, which reinterprets raw bytes as typed
// N-dimensional data honoring a configured byte order:
//
//	[b0 b1 b2 b3 | b4 b5 b6 b7 | ...]  <->  int32 array, little- or big-endian
//
// Encoding flattens the chunk in row-major order; the encoded length is
// always product(shape) * itemSize, with no framing or trailer bytes. A
// chunk therefore encodes to exactly the byte length ComputeEncodedSize
// reports, and callers can pre-size buffers.
//
// # Byte order
//
// Multi-byte element types require an explicit byte order. A BytesCodec is
// specialized per array through EvolveFromArraySpec, which clears the byte
// order for raw (item size zero) types and rejects multi-byte types when no
// order is configured. Encoding an array stored in the opposite order
// produces a byte-swapped copy; the caller's array is never touched.
//
// # Serialized form
//
// Codecs persist as named configurations:
//
//	{"name": "bytes", "configuration": {"endian": "little"}}
//	{"name": "bytes"}                                          // no byte order
//
// The name "endian" is accepted as a legacy alias for "bytes" so metadata
// written by earlier releases keeps resolving.
//
// # Registry
//
// Codec names resolve through a Registry. DefaultRegistry carries the
// built-in codecs; custom codecs register a Factory under their name.
// Registration is single-writer-then-many-readers: register during process
// startup, then look up freely from any goroutine.
//
// # Concurrency
//
// Codec instances are immutable values and every operation is a pure
// function of its inputs. Any number of goroutines may share one instance
// without locking. Nothing here blocks or performs I/O; asynchrony belongs
// to the surrounding pipeline.
package codec
