package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/wire"
)

// dynamicGeneric covers every Go interface type: a field declared as an
// interface is spec.md §4.4's "base/abstract shape or object" case, resolved
// by dispatching on the runtime type of the value rather than the declared
// one.
type dynamicGeneric struct{}

func (dynamicGeneric) Supports(t reflect.Type) bool {
	return t.Kind() == reflect.Interface
}

func (dynamicGeneric) CanExtend(reflect.Type) bool { return true }

func (dynamicGeneric) Extend(_ reflect.Type, reg *Registry) (Codec, error) {
	return &dynamicCodec{reg: reg}, nil
}

// dynamicCodec routes polymorphic calls through the struct dispatch layer:
// Serialize picks the codec from the value's concrete runtime type and
// embeds its id (already part of every StructCodec's wire form); Deserialize
// peeks the SerializationTypeId before delegating.
type dynamicCodec struct {
	reg *Registry
}

func (c *dynamicCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	if v.IsNil() {
		return 0, errors.New(errors.PhaseEncode, errors.KindNilValue).
			Detail("cannot serialize a nil interface value").Build()
	}
	concrete := v.Elem()
	if concrete.Kind() == reflect.Ptr {
		concrete = concrete.Elem()
	}
	sc, ok := c.reg.StructByType(concrete.Type())
	if !ok {
		return 0, errors.New(errors.PhaseEncode, errors.KindTypeNotMapped).
			Type(concrete.Type().Name()).
			Detail("serialization type not mapped").Build()
	}
	return sc.Serialize(concrete, buf, off)
}

func (c *dynamicCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	id := wire.ReadSerializationTypeID(buf, off+wire.ContentLengthSize)
	sc, ok := c.reg.StructByID(id)
	if !ok {
		return reflect.Value{}, 0, errors.New(errors.PhaseDecode, errors.KindTypeNotMapped).
			Detail("run type not mapped: id %d", id).Build()
	}
	return sc.Deserialize(buf, off)
}

func (c *dynamicCodec) SizeFromValue(v reflect.Value) (int, error) {
	if v.IsNil() {
		return 0, errors.New(errors.PhaseEncode, errors.KindNilValue).
			Detail("cannot size a nil interface value").Build()
	}
	concrete := v.Elem()
	if concrete.Kind() == reflect.Ptr {
		concrete = concrete.Elem()
	}
	sc, ok := c.reg.StructByType(concrete.Type())
	if !ok {
		return 0, errors.New(errors.PhaseEncode, errors.KindTypeNotMapped).
			Type(concrete.Type().Name()).
			Detail("serialization type not mapped").Build()
	}
	return sc.SizeFromValue(concrete)
}

func (c *dynamicCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return int(wire.ReadContentLength(buf, off)), nil
}
