package wire

import (
	"bytes"
	"testing"
)

func TestWriteU16Endianness(t *testing.T) {
	buf := make([]byte, 2)
	WriteU16(buf, 0, 0x0102)
	want := []byte{0x02, 0x01}
	if !bytes.Equal(buf, want) {
		t.Errorf("WriteU16(0x0102) = %x, want %x", buf, want)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	buf := make([]byte, 32)

	WriteU8(buf, 0, 0xAB)
	WriteU16(buf, 1, 1500)
	WriteU32(buf, 3, 37500)
	WriteU64(buf, 7, 0x0102030405060708)
	WriteS8(buf, 15, -5)
	WriteS16(buf, 16, -1200)
	WriteS32(buf, 18, -70000)
	WriteS64(buf, 22, -1)

	if ReadU8(buf, 0) != 0xAB {
		t.Error("u8 mismatch")
	}
	if ReadU16(buf, 1) != 1500 {
		t.Error("u16 mismatch")
	}
	if ReadU32(buf, 3) != 37500 {
		t.Error("u32 mismatch")
	}
	if ReadU64(buf, 7) != 0x0102030405060708 {
		t.Error("u64 mismatch")
	}
	if ReadS8(buf, 15) != -5 {
		t.Error("s8 mismatch")
	}
	if ReadS16(buf, 16) != -1200 {
		t.Error("s16 mismatch")
	}
	if ReadS32(buf, 18) != -70000 {
		t.Error("s32 mismatch")
	}
	if ReadS64(buf, 22) != -1 {
		t.Error("s64 mismatch")
	}
}

func TestFloatRoundTrip(t *testing.T) {
	buf := make([]byte, 12)
	WriteF32(buf, 0, 3.5)
	WriteF64(buf, 4, -2.25)

	if ReadF32(buf, 0) != 3.5 {
		t.Error("f32 mismatch")
	}
	if ReadF64(buf, 4) != -2.25 {
		t.Error("f64 mismatch")
	}
}

func TestScenarioS1TwoIntsByFields(t *testing.T) {
	buf := make([]byte, 8)
	WriteS32(buf, 0, 1500)
	WriteS32(buf, 4, 37500)

	want := []byte{0xDC, 0x05, 0x00, 0x00, 0x7C, 0x92, 0x00, 0x00}
	if !bytes.Equal(buf, want) {
		t.Errorf("S1 bytes = % x, want % x", buf, want)
	}
}

func TestCopyBytes(t *testing.T) {
	dst := make([]byte, 10)
	n := CopyBytes(dst, 2, []byte{1, 2, 3, 4})
	if n != 4 {
		t.Fatalf("CopyBytes returned %d, want 4", n)
	}
	if !bytes.Equal(dst[2:6], []byte{1, 2, 3, 4}) {
		t.Errorf("CopyBytes wrote %x", dst[2:6])
	}
}
