package wire

import "unicode/utf16"

// UTF16CodeUnits returns the number of UTF-16 code units s encodes to.
func UTF16CodeUnits(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// UTF16ByteLen returns the byte length of s encoded as UTF-16LE.
func UTF16ByteLen(s string) int {
	return UTF16CodeUnits(s) * 2
}

// WriteUTF16LE encodes s as UTF-16LE code units into buf at off and returns
// the number of bytes written.
func WriteUTF16LE(buf []byte, off int, s string) int {
	units := utf16.Encode([]rune(s))
	for i, u := range units {
		WriteU16(buf, off+i*2, u)
	}
	return len(units) * 2
}

// ReadUTF16LE decodes n bytes of UTF-16LE code units from buf at off.
func ReadUTF16LE(buf []byte, off int, n int) string {
	count := n / 2
	units := make([]uint16, count)
	for i := 0; i < count; i++ {
		units[i] = ReadU16(buf, off+i*2)
	}
	return string(utf16.Decode(units))
}
