package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/wire"
)

// mapGeneric covers every Go map type, composing the key-value-pair wire
// form from spec.md §4.5 directly rather than exposing a standalone pair
// codec: Go's map already pairs K and V natively, so a separate generic
// Pair[K,V] type would only add reflect-based type-identity bookkeeping
// without buying anything (see DESIGN.md).
type mapGeneric struct{}

func (mapGeneric) Supports(t reflect.Type) bool {
	return t.Kind() == reflect.Map
}

func (mapGeneric) CanExtend(reflect.Type) bool { return true }

func (mapGeneric) Extend(t reflect.Type, reg *Registry) (Codec, error) {
	keyCodec, err := reg.Resolve(t.Key())
	if err != nil {
		return nil, err
	}
	valueType := t.Elem()
	valueCodec, err := reg.Resolve(valueType)
	if err != nil {
		return nil, err
	}
	return &mapCodec{
		mapType:       t,
		keyType:       t.Key(),
		valueType:     valueType,
		keyCodec:      keyCodec,
		valueCodec:    valueCodec,
		valueNullable: valueType.Kind() == reflect.Ptr,
	}, nil
}

// mapCodec is defined as an array of key-value pairs: the outer
// CollectionLength/TypeData header is never sparse (a pair itself is never
// absent, only its value may be null), and each pair carries its own
// ContentLength plus a one-byte null flag for the value.
type mapCodec struct {
	mapType       reflect.Type
	keyType       reflect.Type
	valueType     reflect.Type
	keyCodec      Codec
	valueCodec    Codec
	valueNullable bool
}

func (c *mapCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	if err := checkCapacity(errors.PhaseEncode, buf, off, arrayHeaderSize); err != nil {
		return 0, err
	}

	n := v.Len()
	pos := off + arrayHeaderSize

	iter := v.MapRange()
	for iter.Next() {
		pairOff := pos
		keyPos := pairOff + wire.ContentLengthSize

		kn, err := c.keyCodec.Serialize(iter.Key(), buf, keyPos)
		if err != nil {
			return 0, err
		}

		val := iter.Value()
		null := c.valueNullable && val.IsNil()
		typeDataPos := keyPos + kn
		valuePos := typeDataPos + wire.TypeDataSize

		vn := 0
		if !null {
			vn, err = c.valueCodec.Serialize(val, buf, valuePos)
			if err != nil {
				return 0, err
			}
		}
		wire.WriteTypeData(buf, typeDataPos, wire.ValueNullFlag(null))

		pairTotal := valuePos + vn - pairOff
		if err := checkLength(errors.PhaseEncode, c.mapType.String(), "key-value pair ContentLength", pairTotal); err != nil {
			return 0, err
		}
		wire.WriteContentLength(buf, pairOff, uint16(pairTotal))
		pos = pairOff + pairTotal
	}

	total := pos - off
	if err := checkLength(errors.PhaseEncode, c.mapType.String(), "ContentLength", total); err != nil {
		return 0, err
	}
	if err := checkLength(errors.PhaseEncode, c.mapType.String(), "CollectionLength", n); err != nil {
		return 0, err
	}
	wire.WriteContentLength(buf, off, uint16(total))
	wire.WriteCollectionLength(buf, off+wire.ContentLengthSize, uint16(n))
	wire.WriteTypeData(buf, off+wire.ContentLengthSize+wire.CollectionLengthSize, wire.SparseFlag(false))
	return total, nil
}

func (c *mapCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	total := int(wire.ReadContentLength(buf, off))
	n := int(wire.ReadCollectionLength(buf, off+wire.ContentLengthSize))

	out := reflect.MakeMapWithSize(c.mapType, n)
	pos := off + arrayHeaderSize

	for i := 0; i < n; i++ {
		pairOff := pos
		pairTotal := int(wire.ReadContentLength(buf, pairOff))
		keyPos := pairOff + wire.ContentLengthSize

		key, kn, err := c.keyCodec.Deserialize(buf, keyPos)
		if err != nil {
			return reflect.Value{}, 0, err
		}

		typeDataPos := keyPos + kn
		typeData := wire.ReadTypeData(buf, typeDataPos)
		valuePos := typeDataPos + wire.TypeDataSize

		var value reflect.Value
		if wire.IsValueNull(typeData) {
			value = reflect.Zero(c.valueType)
		} else {
			value, _, err = c.valueCodec.Deserialize(buf, valuePos)
			if err != nil {
				return reflect.Value{}, 0, err
			}
		}

		out.SetMapIndex(key, value)
		pos = pairOff + pairTotal
	}

	return out, total, nil
}

func (c *mapCodec) SizeFromValue(v reflect.Value) (int, error) {
	size := arrayHeaderSize
	iter := v.MapRange()
	for iter.Next() {
		ks, err := c.keyCodec.SizeFromValue(iter.Key())
		if err != nil {
			return 0, err
		}
		pairSize := wire.ContentLengthSize + ks + wire.TypeDataSize

		val := iter.Value()
		if !(c.valueNullable && val.IsNil()) {
			vs, err := c.valueCodec.SizeFromValue(val)
			if err != nil {
				return 0, err
			}
			pairSize += vs
		}
		if err := checkLength(errors.PhaseEncode, c.mapType.String(), "key-value pair ContentLength", pairSize); err != nil {
			return 0, err
		}
		size += pairSize
	}
	if err := checkLength(errors.PhaseEncode, c.mapType.String(), "CollectionLength", v.Len()); err != nil {
		return 0, err
	}
	if err := checkLength(errors.PhaseEncode, c.mapType.String(), "ContentLength", size); err != nil {
		return 0, err
	}
	return size, nil
}

func (c *mapCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return int(wire.ReadContentLength(buf, off)), nil
}
