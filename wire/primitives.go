package wire

import (
	"encoding/binary"
	"math"
)

// ReadU8 reads a single byte at off.
func ReadU8(buf []byte, off int) uint8 {
	return buf[off]
}

// WriteU8 writes a single byte at off.
func WriteU8(buf []byte, off int, v uint8) {
	buf[off] = v
}

// ReadU16 reads a little-endian uint16 at off.
func ReadU16(buf []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(buf[off:])
}

// WriteU16 writes a little-endian uint16 at off.
func WriteU16(buf []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(buf[off:], v)
}

// ReadU32 reads a little-endian uint32 at off.
func ReadU32(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off:])
}

// WriteU32 writes a little-endian uint32 at off.
func WriteU32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// ReadU64 reads a little-endian uint64 at off.
func ReadU64(buf []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(buf[off:])
}

// WriteU64 writes a little-endian uint64 at off.
func WriteU64(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:], v)
}

// ReadS8 reads a signed byte at off.
func ReadS8(buf []byte, off int) int8 { return int8(buf[off]) }

// WriteS8 writes a signed byte at off.
func WriteS8(buf []byte, off int, v int8) { buf[off] = byte(v) }

// ReadS16 reads a little-endian int16 at off.
func ReadS16(buf []byte, off int) int16 { return int16(ReadU16(buf, off)) }

// WriteS16 writes a little-endian int16 at off.
func WriteS16(buf []byte, off int, v int16) { WriteU16(buf, off, uint16(v)) }

// ReadS32 reads a little-endian int32 at off.
func ReadS32(buf []byte, off int) int32 { return int32(ReadU32(buf, off)) }

// WriteS32 writes a little-endian int32 at off.
func WriteS32(buf []byte, off int, v int32) { WriteU32(buf, off, uint32(v)) }

// ReadS64 reads a little-endian int64 at off.
func ReadS64(buf []byte, off int) int64 { return int64(ReadU64(buf, off)) }

// WriteS64 writes a little-endian int64 at off.
func WriteS64(buf []byte, off int, v int64) { WriteU64(buf, off, uint64(v)) }

// ReadF32 reads a little-endian IEEE-754 float32 at off.
func ReadF32(buf []byte, off int) float32 {
	return math.Float32frombits(ReadU32(buf, off))
}

// WriteF32 writes a little-endian IEEE-754 float32 at off.
func WriteF32(buf []byte, off int, v float32) {
	WriteU32(buf, off, math.Float32bits(v))
}

// ReadF64 reads a little-endian IEEE-754 float64 at off.
func ReadF64(buf []byte, off int) float64 {
	return math.Float64frombits(ReadU64(buf, off))
}

// WriteF64 writes a little-endian IEEE-754 float64 at off.
func WriteF64(buf []byte, off int, v float64) {
	WriteU64(buf, off, math.Float64bits(v))
}

// CopyBytes performs a vectorized bulk copy of src into dst at off, returning
// the number of bytes written.
func CopyBytes(dst []byte, off int, src []byte) int {
	return copy(dst[off:], src)
}
