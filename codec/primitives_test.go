package codec

import (
	"reflect"
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	r := NewRegistry()
	cases := []any{
		uint8(200), int8(-5), uint16(60000), int16(-1234),
		uint32(4000000000), int32(-123456), uint64(1 << 40), int64(-(1 << 40)),
		float32(3.5), float64(-2.25), true, "hello",
	}

	for _, v := range cases {
		rv := reflect.ValueOf(v)
		c, err := r.Resolve(rv.Type())
		if err != nil {
			t.Fatalf("Resolve(%T): %v", v, err)
		}

		size, err := c.SizeFromValue(rv)
		if err != nil {
			t.Fatalf("SizeFromValue(%T): %v", v, err)
		}
		buf := make([]byte, size)
		n, err := c.Serialize(rv, buf, 0)
		if err != nil {
			t.Fatalf("Serialize(%T): %v", v, err)
		}
		if n != size {
			t.Fatalf("Serialize(%T) wrote %d bytes, want %d", v, n, size)
		}

		out, consumed, err := c.Deserialize(buf, 0)
		if err != nil {
			t.Fatalf("Deserialize(%T): %v", v, err)
		}
		if consumed != size {
			t.Fatalf("Deserialize(%T) consumed %d, want %d", v, consumed, size)
		}
		if out.Interface() != v {
			t.Fatalf("round trip mismatch: got %v, want %v", out.Interface(), v)
		}
	}
}

func TestStringContentLengthIsByteCount(t *testing.T) {
	r := NewRegistry()
	c, err := r.Resolve(reflect.TypeOf(""))
	if err != nil {
		t.Fatal(err)
	}

	s := "Hi"
	buf := make([]byte, 32)
	n, err := c.Serialize(reflect.ValueOf(s), buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 { // 2 content-length bytes + 4 UTF-16LE bytes
		t.Fatalf("Serialize wrote %d bytes, want 6", n)
	}
	if buf[0] != 4 || buf[1] != 0 {
		t.Fatalf("ContentLength bytes = %v, want [4 0]", buf[:2])
	}
}
