package bitfield

import "github.com/wippyai/netcodec/wire"

// BitField is a fixed-length bit vector over a byte slice. Bit i lives in
// byte i/8 at position 7-(i%8) (MSB-first within each byte).
type BitField struct {
	bits []byte
}

// New allocates a zeroed BitField spanning byteLen bytes.
func New(byteLen int) *BitField {
	return &BitField{bits: make([]byte, byteLen)}
}

// BytesLenFromBits returns ceil(n/8), the number of bytes needed to hold n bits.
func BytesLenFromBits(n int) int {
	return (n + 7) / 8
}

// NewFromBitCount allocates a BitField sized to hold n bits.
func NewFromBitCount(n int) *BitField {
	return New(BytesLenFromBits(n))
}

// GetBit reports whether bit i is set.
func (b *BitField) GetBit(i int) bool {
	byteIdx := i / 8
	pos := uint(7 - (i % 8))
	return b.bits[byteIdx]&(1<<pos) != 0
}

// SetBit sets bit i to exactly v (clearing it when v is false).
func (b *BitField) SetBit(i int, v bool) {
	byteIdx := i / 8
	pos := uint(7 - (i % 8))
	if v {
		b.bits[byteIdx] |= 1 << pos
	} else {
		b.bits[byteIdx] &^= 1 << pos
	}
}

// BytesLen returns the number of bytes backing this BitField.
func (b *BitField) BytesLen() int {
	return len(b.bits)
}

// CopyTo writes the raw mask bytes into buf at off.
func (b *BitField) CopyTo(buf []byte, off int) {
	copy(buf[off:], b.bits)
}

// CopyFrom reads len(b.bits) raw mask bytes from buf at off.
func (b *BitField) CopyFrom(buf []byte, off int) {
	copy(b.bits, buf[off:off+len(b.bits)])
}

// Any reports whether at least one bit in the field is set.
func (b *BitField) Any() bool {
	for _, by := range b.bits {
		if by != 0 {
			return true
		}
	}
	return false
}

// WireSize returns the size of this value's wire form: a 2-byte content
// length header followed by the mask bytes.
func (b *BitField) WireSize() int {
	return wire.ContentLengthSize + len(b.bits)
}

// WriteValue writes the top-level wire form
// [ContentLength: u16 = byte_len+2][bytes] at off, returning bytes written.
func (b *BitField) WriteValue(buf []byte, off int) int {
	wire.WriteContentLength(buf, off, uint16(b.WireSize()))
	b.CopyTo(buf, off+wire.ContentLengthSize)
	return b.WireSize()
}

// ReadValue reads a top-level BitField value at off, returning it and the
// number of bytes consumed.
func ReadValue(buf []byte, off int) (*BitField, int) {
	contentLen := wire.ReadContentLength(buf, off)
	byteLen := int(contentLen) - wire.ContentLengthSize
	bf := New(byteLen)
	bf.CopyFrom(buf, off+wire.ContentLengthSize)
	return bf, int(contentLen)
}
