package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/wire"
)

// enumGeneric covers named integer types (`type Color int32`, not the raw
// `int32` itself, which the fixed primitive codecs already own). A named
// type's PkgPath is non-empty; a builtin's is empty, which is how Supports
// tells the two apart without touching the registry.
type enumGeneric struct{}

var enumWidths = map[reflect.Kind]int{
	reflect.Int8: 1, reflect.Uint8: 1,
	reflect.Int16: 2, reflect.Uint16: 2,
	reflect.Int32: 4, reflect.Uint32: 4,
	reflect.Int64: 8, reflect.Uint64: 8,
}

func (enumGeneric) Supports(t reflect.Type) bool {
	if t.PkgPath() == "" {
		return false
	}
	_, ok := enumWidths[t.Kind()]
	return ok
}

func (enumGeneric) CanExtend(reflect.Type) bool { return true }

func (enumGeneric) Extend(t reflect.Type, reg *Registry) (Codec, error) {
	return &enumCodec{t: t, width: enumWidths[t.Kind()], signed: isSignedKind(t.Kind())}, nil
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// enumCodec encodes a named integer type as `[TypeData: u8 = width][underlying
// integer, little-endian, width bytes]` (spec.md §4.5).
type enumCodec struct {
	t      reflect.Type
	width  int
	signed bool
}

func (c *enumCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	wire.WriteTypeData(buf, off, uint8(c.width))
	pos := off + wire.TypeDataSize
	if c.signed {
		writeSigned(buf, pos, v.Int(), c.width)
	} else {
		writeUnsigned(buf, pos, v.Uint(), c.width)
	}
	return wire.TypeDataSize + c.width, nil
}

func (c *enumCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	width := int(wire.ReadTypeData(buf, off))
	pos := off + wire.TypeDataSize

	out := reflect.New(c.t).Elem()
	if c.signed {
		out.SetInt(readSigned(buf, pos, width))
	} else {
		out.SetUint(readUnsigned(buf, pos, width))
	}
	return out, wire.TypeDataSize + width, nil
}

func (c *enumCodec) SizeFromValue(reflect.Value) (int, error) {
	return wire.TypeDataSize + c.width, nil
}

func (c *enumCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return wire.TypeDataSize + int(wire.ReadTypeData(buf, off)), nil
}

func writeUnsigned(buf []byte, off int, v uint64, width int) {
	switch width {
	case 1:
		wire.WriteU8(buf, off, uint8(v))
	case 2:
		wire.WriteU16(buf, off, uint16(v))
	case 4:
		wire.WriteU32(buf, off, uint32(v))
	case 8:
		wire.WriteU64(buf, off, v)
	}
}

func writeSigned(buf []byte, off int, v int64, width int) {
	switch width {
	case 1:
		wire.WriteS8(buf, off, int8(v))
	case 2:
		wire.WriteS16(buf, off, int16(v))
	case 4:
		wire.WriteS32(buf, off, int32(v))
	case 8:
		wire.WriteS64(buf, off, v)
	}
}

func readUnsigned(buf []byte, off, width int) uint64 {
	switch width {
	case 1:
		return uint64(wire.ReadU8(buf, off))
	case 2:
		return uint64(wire.ReadU16(buf, off))
	case 4:
		return uint64(wire.ReadU32(buf, off))
	default:
		return wire.ReadU64(buf, off)
	}
}

func readSigned(buf []byte, off, width int) int64 {
	switch width {
	case 1:
		return int64(wire.ReadS8(buf, off))
	case 2:
		return int64(wire.ReadS16(buf, off))
	case 4:
		return int64(wire.ReadS32(buf, off))
	default:
		return wire.ReadS64(buf, off)
	}
}
