// Package buffer provides the raw byte container and the shaped, typed
// array view that NjordDB codecs operate on.
package buffer

// Buffer is an opaque sequence of bytes holding a chunk's encoded form.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data without copying. The caller must not modify data
// after handing it over.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int {
	return len(b.data)
}
