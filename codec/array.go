package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/bitfield"
	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/wire"
)

// arrayGeneric covers every Go slice type. It is also the wire
// representation for spec.md §4.5's "list" codec: a list is encoded as a
// snapshot of its elements through the same array wire skeleton, so Go's
// single slice type serves both without a separate codec.
type arrayGeneric struct{}

func (arrayGeneric) Supports(t reflect.Type) bool {
	return t.Kind() == reflect.Slice
}

func (arrayGeneric) CanExtend(reflect.Type) bool { return true }

func (arrayGeneric) Extend(t reflect.Type, reg *Registry) (Codec, error) {
	elem := t.Elem()
	inner, err := reg.Resolve(elem)
	if err != nil {
		return nil, err
	}
	return &arrayCodec{
		sliceType:    t,
		elemType:     elem,
		elemCodec:    inner,
		elemNullable: elem.Kind() == reflect.Ptr,
	}, nil
}

// arrayCodec implements the shared collection wire skeleton from spec.md
// §4.5: ContentLength, CollectionLength, TypeData(sparse flag), an optional
// null-mask BitField block, then elements in index order. Serialize writes
// elements through elemCodec unconditionally — when elemType is a pointer,
// elemCodec is an *optionalCodec that already contributes zero bytes for a
// nil element, so skipping an absent element on write falls out of that
// composition. Deserialize consults the null mask and fills absent slots
// with the zero value without calling elemCodec.
type arrayCodec struct {
	sliceType    reflect.Type
	elemType     reflect.Type
	elemCodec    Codec
	elemNullable bool
}

const arrayHeaderSize = wire.ContentLengthSize + wire.CollectionLengthSize + wire.TypeDataSize

func (c *arrayCodec) nullMask(v reflect.Value) (*bitfield.BitField, bool) {
	if !c.elemNullable {
		return nil, false
	}
	n := v.Len()
	sparse := false
	for i := 0; i < n; i++ {
		if v.Index(i).IsNil() {
			sparse = true
			break
		}
	}
	if !sparse {
		return nil, false
	}
	mask := bitfield.NewFromBitCount(n)
	for i := 0; i < n; i++ {
		if v.Index(i).IsNil() {
			mask.SetBit(i, true)
		}
	}
	return mask, true
}

func (c *arrayCodec) Serialize(v reflect.Value, buf []byte, off int) (int, error) {
	if err := checkCapacity(errors.PhaseEncode, buf, off, arrayHeaderSize); err != nil {
		return 0, err
	}

	n := v.Len()
	mask, sparse := c.nullMask(v)

	pos := off + arrayHeaderSize
	if sparse {
		pos += mask.WriteValue(buf, pos)
	}
	for i := 0; i < n; i++ {
		written, err := c.elemCodec.Serialize(v.Index(i), buf, pos)
		if err != nil {
			return 0, err
		}
		pos += written
	}

	total := pos - off
	if err := checkLength(errors.PhaseEncode, c.sliceType.String(), "ContentLength", total); err != nil {
		return 0, err
	}
	if err := checkLength(errors.PhaseEncode, c.sliceType.String(), "CollectionLength", n); err != nil {
		return 0, err
	}
	wire.WriteContentLength(buf, off, uint16(total))
	wire.WriteCollectionLength(buf, off+wire.ContentLengthSize, uint16(n))
	wire.WriteTypeData(buf, off+wire.ContentLengthSize+wire.CollectionLengthSize, wire.SparseFlag(sparse))
	return total, nil
}

func (c *arrayCodec) Deserialize(buf []byte, off int) (reflect.Value, int, error) {
	total := int(wire.ReadContentLength(buf, off))
	n := int(wire.ReadCollectionLength(buf, off+wire.ContentLengthSize))
	typeData := wire.ReadTypeData(buf, off+wire.ContentLengthSize+wire.CollectionLengthSize)
	sparse := wire.IsSparse(typeData)

	pos := off + arrayHeaderSize
	var mask *bitfield.BitField
	if sparse {
		var maskLen int
		mask, maskLen = bitfield.ReadValue(buf, pos)
		pos += maskLen
	}

	out := reflect.MakeSlice(c.sliceType, n, n)
	for i := 0; i < n; i++ {
		if sparse && mask.GetBit(i) {
			out.Index(i).Set(reflect.Zero(c.elemType))
			continue
		}
		val, consumed, err := c.elemCodec.Deserialize(buf, pos)
		if err != nil {
			return reflect.Value{}, 0, err
		}
		out.Index(i).Set(val)
		pos += consumed
	}

	return out, total, nil
}

func (c *arrayCodec) SizeFromValue(v reflect.Value) (int, error) {
	n := v.Len()
	_, sparse := c.nullMask(v)

	size := arrayHeaderSize
	if sparse {
		size += bitfield.BytesLenFromBits(n) + wire.ContentLengthSize
	}
	for i := 0; i < n; i++ {
		s, err := c.elemCodec.SizeFromValue(v.Index(i))
		if err != nil {
			return 0, err
		}
		size += s
	}
	if err := checkLength(errors.PhaseEncode, c.sliceType.String(), "CollectionLength", n); err != nil {
		return 0, err
	}
	if err := checkLength(errors.PhaseEncode, c.sliceType.String(), "ContentLength", size); err != nil {
		return 0, err
	}
	return size, nil
}

func (c *arrayCodec) SizeFromBuffer(buf []byte, off int) (int, error) {
	return int(wire.ReadContentLength(buf, off)), nil
}
