package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/wire"
)

// scalarCodec is a fixed codec for one primitive Go kind, parameterized by
// its wire width and read/write closures. All ten numeric primitives and
// bool share this shape; only the closures differ.
type scalarCodec struct {
	width int
	read  func(buf []byte, off int) reflect.Value
	write func(buf []byte, off int, v reflect.Value) int
}

func (c scalarCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	return c.write(buf, off, v), nil
}

func (c scalarCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	return c.read(buf, off), c.width, nil
}

func (c scalarCodec) SizeFromValue(reflect.Value) (int, error) { return c.width, nil }
func (c scalarCodec) SizeFromBuffer([]byte, int) (int, error)  { return c.width, nil }

func registerPrimitives(r *Registry) {
	r.RegisterFixed(reflect.TypeOf(false), scalarCodec{
		width: 1,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadU8(buf, off) != 0) },
		write: func(buf []byte, off int, v reflect.Value) int {
			b := uint8(0)
			if v.Bool() {
				b = 1
			}
			wire.WriteU8(buf, off, b)
			return 1
		},
	})

	r.RegisterFixed(reflect.TypeOf(uint8(0)), scalarCodec{
		width: 1,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadU8(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteU8(buf, off, uint8(v.Uint())); return 1 },
	})
	r.RegisterFixed(reflect.TypeOf(int8(0)), scalarCodec{
		width: 1,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadS8(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteS8(buf, off, int8(v.Int())); return 1 },
	})

	r.RegisterFixed(reflect.TypeOf(uint16(0)), scalarCodec{
		width: 2,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadU16(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteU16(buf, off, uint16(v.Uint())); return 2 },
	})
	r.RegisterFixed(reflect.TypeOf(int16(0)), scalarCodec{
		width: 2,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadS16(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteS16(buf, off, int16(v.Int())); return 2 },
	})

	r.RegisterFixed(reflect.TypeOf(uint32(0)), scalarCodec{
		width: 4,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadU32(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteU32(buf, off, uint32(v.Uint())); return 4 },
	})
	r.RegisterFixed(reflect.TypeOf(int32(0)), scalarCodec{
		width: 4,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadS32(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteS32(buf, off, int32(v.Int())); return 4 },
	})

	r.RegisterFixed(reflect.TypeOf(uint64(0)), scalarCodec{
		width: 8,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadU64(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteU64(buf, off, v.Uint()); return 8 },
	})
	r.RegisterFixed(reflect.TypeOf(int64(0)), scalarCodec{
		width: 8,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadS64(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteS64(buf, off, v.Int()); return 8 },
	})

	r.RegisterFixed(reflect.TypeOf(float32(0)), scalarCodec{
		width: 4,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadF32(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteF32(buf, off, float32(v.Float())); return 4 },
	})
	r.RegisterFixed(reflect.TypeOf(float64(0)), scalarCodec{
		width: 8,
		read:  func(buf []byte, off int) reflect.Value { return reflect.ValueOf(wire.ReadF64(buf, off)) },
		write: func(buf []byte, off int, v reflect.Value) int { wire.WriteF64(buf, off, v.Float()); return 8 },
	})

	r.RegisterFixed(reflect.TypeOf(""), stringCodec{})
}

// stringCodec encodes strings as [ContentLength: u16][UTF-16LE bytes].
type stringCodec struct{}

func (stringCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	s := v.String()
	total := wire.UTF16ByteLen(s) + wire.ContentLengthSize
	if err := checkLength(errors.PhaseEncode, "string", "ContentLength", total); err != nil {
		return 0, err
	}
	if err := checkCapacity(errors.PhaseEncode, buf, off, total); err != nil {
		return 0, err
	}
	wire.WriteContentLength(buf, off, uint16(total))
	wire.WriteUTF16LE(buf, off+wire.ContentLengthSize, s)
	return total, nil
}

func (stringCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	total := int(wire.ReadContentLength(buf, off))
	payload := total - wire.ContentLengthSize
	s := wire.ReadUTF16LE(buf, off+wire.ContentLengthSize, payload)
	return reflect.ValueOf(s), total, nil
}

func (stringCodec) SizeFromValue(v reflect.Value) (int, error) {
	total := wire.UTF16ByteLen(v.String()) + wire.ContentLengthSize
	if err := checkLength(errors.PhaseEncode, "string", "ContentLength", total); err != nil {
		return 0, err
	}
	return total, nil
}

func (stringCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return int(wire.ReadContentLength(buf, off)), nil
}
