package codec

import "reflect"

// optionalGeneric covers every pointer-kind Go type: `*T` is this codec's
// representation of "optional T" (spec.md §4.5's optional codec). A nil
// pointer serializes to zero bytes; presence/absence itself is recorded by
// the enclosing struct's null mask, not by the optional payload.
type optionalGeneric struct{}

func (optionalGeneric) Supports(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr
}

func (optionalGeneric) CanExtend(reflect.Type) bool { return true }

func (optionalGeneric) Extend(t reflect.Type, reg *Registry) (Codec, error) {
	elem := t.Elem()
	inner, err := reg.Resolve(elem)
	if err != nil {
		return nil, err
	}
	return &optionalCodec{elemType: elem, inner: inner}, nil
}

// optionalCodec wraps a *T codec around an inner codec for T. It never
// emits or reads anything when the pointer is nil; the caller (StructCodec,
// arrayCodec) is responsible for tracking presence in a null mask and for
// never invoking Deserialize on an absent slot.
type optionalCodec struct {
	elemType reflect.Type
	inner    Codec
}

func (c *optionalCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	if v.IsNil() {
		return 0, nil
	}
	return c.inner.Serialize(v.Elem(), buf, off)
}

// Deserialize always assumes the value is present; callers must consult the
// null mask and skip this call entirely for absent slots.
func (c *optionalCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	val, n, err := c.inner.Deserialize(buf, off)
	if err != nil {
		return reflect.Value{}, 0, err
	}
	ptr := reflect.New(c.elemType)
	ptr.Elem().Set(val)
	return ptr, n, nil
}

func (c *optionalCodec) SizeFromValue(v reflect.Value) (int, error) {
	if v.IsNil() {
		return 0, nil
	}
	return c.inner.SizeFromValue(v.Elem())
}

// SizeFromBuffer is only meaningful when the caller already knows the slot
// is present (the absent case costs zero bytes and is never measured from
// the buffer in isolation).
func (c *optionalCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return c.inner.SizeFromBuffer(buf, off)
}
