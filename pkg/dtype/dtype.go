// Package dtype describes array element types and byte order for NjordDB.
package dtype

import (
	"encoding/binary"
	"fmt"
)

// Endian identifies the byte order of multi-byte elements.
type Endian string

const (
	BigEndian    Endian = "big"
	LittleEndian Endian = "little"
)

// nativeEndian is resolved once at startup.
var nativeEndian = func() Endian {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// NativeEndian returns the byte order of the host platform.
func NativeEndian() Endian {
	return nativeEndian
}

// ParseEndian converts a string into an Endian value. Only the exact names
// "big" and "little" are accepted.
func ParseEndian(s string) (Endian, error) {
	switch Endian(s) {
	case BigEndian:
		return BigEndian, nil
	case LittleEndian:
		return LittleEndian, nil
	default:
		return "", fmt.Errorf("invalid endian %q: expected \"big\" or \"little\"", s)
	}
}

// ByteOrder returns the encoding/binary order corresponding to e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// DataType describes one array element: a format code (excluding any
// byte-order marker) and the number of bytes one element occupies.
// An ItemSize of zero marks a byte-order-agnostic raw type.
type DataType struct {
	Code     string
	ItemSize int
}

// Predefined element types.
var (
	Int8    = DataType{Code: "i1", ItemSize: 1}
	Int16   = DataType{Code: "i2", ItemSize: 2}
	Int32   = DataType{Code: "i4", ItemSize: 4}
	Int64   = DataType{Code: "i8", ItemSize: 8}
	Uint8   = DataType{Code: "u1", ItemSize: 1}
	Uint16  = DataType{Code: "u2", ItemSize: 2}
	Uint32  = DataType{Code: "u4", ItemSize: 4}
	Uint64  = DataType{Code: "u8", ItemSize: 8}
	Float32 = DataType{Code: "f4", ItemSize: 4}
	Float64 = DataType{Code: "f8", ItemSize: 8}
	Raw     = DataType{Code: "r", ItemSize: 0}
)

var dataTypesByName = map[string]DataType{
	"int8":    Int8,
	"int16":   Int16,
	"int32":   Int32,
	"int64":   Int64,
	"uint8":   Uint8,
	"uint16":  Uint16,
	"uint32":  Uint32,
	"uint64":  Uint64,
	"float32": Float32,
	"float64": Float64,
	"raw":     Raw,
}

// Parse looks up a data type by its public name (e.g. "int32") or by its
// format code (e.g. "i4").
func Parse(s string) (DataType, error) {
	if dt, ok := dataTypesByName[s]; ok {
		return dt, nil
	}
	for _, dt := range dataTypesByName {
		if dt.Code == s {
			return dt, nil
		}
	}
	return DataType{}, fmt.Errorf("unknown data type %q", s)
}

// HasByteOrder reports whether elements of this type carry a byte order.
func (dt DataType) HasByteOrder() bool {
	return dt.ItemSize > 1
}

func (dt DataType) String() string {
	return dt.Code
}
