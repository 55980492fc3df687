package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/bitfield"
	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/mapping"
	"github.com/wippyai/netcodec/program"
	"github.com/wippyai/netcodec/wire"
)

// StructCodec is the compiled, executable codec for one registered user
// type: a thin interpreter over its program's op list plus the dense
// serialization type id assigned at registration (spec.md §4.4, §4.6).
//
// Grounded on transcoder/encoder.go + transcoder/decoder.go, which walk a
// compiled field list in lockstep with a generated op sequence; here the op
// sequence is the program.CompiledProgram and the "generated" step is
// replaced by straight interpretation, matching §7's decision to execute
// rather than code-generate (see DESIGN.md).
type StructCodec struct {
	typ     reflect.Type
	id      uint16
	mapping *mapping.ObjectMapping
	program *program.CompiledProgram
}

// ID returns the dense serialization type id assigned at registration.
func (sc *StructCodec) ID() uint16 { return sc.id }

// Type returns the Go type this codec was registered for.
func (sc *StructCodec) Type() reflect.Type { return sc.typ }

func (sc *StructCodec) headerSize() int {
	return wire.ContentLengthSize + wire.SerializationTypeIDSize + sc.program.Ranges.NullMaskBytes
}

// indirect unwraps a pointer to the mapped type down to the struct value
// itself; StructCodec always operates on the struct value, never the
// pointer, since descriptors address fields by index off the struct.
func (sc *StructCodec) indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}

// Serialize writes the full struct block: ContentLength, SerializationTypeId,
// the null mask, then every op's value in program order. A null-mask op
// whose value is absent (nil pointer/slice/map/interface) is skipped without
// calling its codec and contributes zero bytes; its mask bit is what tells
// Deserialize to skip the read.
func (sc *StructCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	v = sc.indirect(v)

	if err := checkCapacity(errors.PhaseEncode, buf, off, sc.headerSize()); err != nil {
		return 0, err
	}

	maskBytes := sc.program.Ranges.NullMaskBytes
	var mask *bitfield.BitField
	if maskBytes > 0 {
		mask = bitfield.New(maskBytes)
		for _, op := range sc.program.SerializeOps {
			if !op.HasNullMaskBit() {
				continue
			}
			if isAbsent(op.Descriptor.Get(v)) {
				mask.SetBit(op.NullMaskBit, true)
			}
		}
	}

	pos := off + sc.headerSize()
	for _, op := range sc.program.SerializeOps {
		val := op.Descriptor.Get(v)
		if op.HasNullMaskBit() && isAbsent(val) {
			continue // absent: contributes zero bytes, never touches the codec
		}
		n, err := op.Codec.Serialize(val, buf, pos)
		if err != nil {
			return 0, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Path(op.Descriptor.Name).Type(sc.typ.Name()).Cause(err).Build()
		}
		pos += n
	}

	total := pos - off
	if err := checkLength(errors.PhaseEncode, sc.typ.Name(), "ContentLength", total); err != nil {
		return 0, err
	}
	wire.WriteContentLength(buf, off, uint16(total))
	wire.WriteSerializationTypeID(buf, off+wire.ContentLengthSize, sc.id)
	if mask != nil {
		mask.CopyTo(buf, off+wire.ContentLengthSize+wire.SerializationTypeIDSize)
	}
	return total, nil
}

// Deserialize reconstructs a value of the mapped type: reads the header and
// null mask, feeds the activator range to the activator, then assigns the
// remaining ops' values onto the constructed struct.
func (sc *StructCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	total := int(wire.ReadContentLength(buf, off))
	maskBytes := sc.program.Ranges.NullMaskBytes

	var mask *bitfield.BitField
	maskOff := off + wire.ContentLengthSize + wire.SerializationTypeIDSize
	if maskBytes > 0 {
		mask = bitfield.New(maskBytes)
		mask.CopyFrom(buf, maskOff)
	}

	pos := maskOff + maskBytes
	values := make([]reflect.Value, len(sc.program.DeserializeOps))

	for i, op := range sc.program.DeserializeOps {
		if op.HasNullMaskBit() && mask.GetBit(op.NullMaskBit) {
			values[i] = reflect.Zero(op.Descriptor.ValueType)
			continue
		}
		val, n, err := op.Codec.Deserialize(buf, pos)
		if err != nil {
			return reflect.Value{}, 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(op.Descriptor.Name).Type(sc.typ.Name()).Cause(err).Build()
		}
		values[i] = val
		pos += n
	}

	activatorArgs := values[sc.program.Ranges.Activator.Start:sc.program.Ranges.Activator.End]
	out := sc.mapping.Activator.Construct(sc.typ, activatorArgs)

	for i, op := range sc.program.DeserializeOps {
		if op.Kind == program.OpEmitActivatorParam {
			continue
		}
		op.Descriptor.Set(out, values[i])
	}

	return out, total, nil
}

// SizeFromValue recomputes the wire size of v without writing it.
func (sc *StructCodec) SizeFromValue(v reflect.Value) (int, error) {
	v = sc.indirect(v)
	size := sc.headerSize()
	for _, op := range sc.program.SerializeOps {
		val := op.Descriptor.Get(v)
		if op.HasNullMaskBit() && isAbsent(val) {
			continue
		}
		s, err := op.Codec.SizeFromValue(val)
		if err != nil {
			return 0, err
		}
		size += s
	}
	if err := checkLength(errors.PhaseEncode, sc.typ.Name(), "ContentLength", size); err != nil {
		return 0, err
	}
	return size, nil
}

// SizeFromBuffer reads the wire size directly from ContentLength.
func (sc *StructCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return int(wire.ReadContentLength(buf, off)), nil
}

// isAbsent reports whether a nullable descriptor's value is the Go
// representation of "not present" for its kind.
func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
