package netcodec

import (
	"reflect"
	"sync"

	"github.com/wippyai/netcodec/codec"
	"github.com/wippyai/netcodec/errors"
)

// Pool limits mirror the teacher's flattening buffer pool: bound retained
// capacity so one oversized message doesn't pin a large buffer forever.
const (
	poolMaxCap  = 64 * 1024
	poolInitCap = 256
)

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, poolInitCap)
		return &b
	},
}

func getBuf(size int) *[]byte {
	p := bufPool.Get().(*[]byte)
	if cap(*p) < size {
		*p = make([]byte, size)
	} else {
		*p = (*p)[:size]
	}
	return p
}

func putBuf(p *[]byte) {
	if p == nil || cap(*p) > poolMaxCap {
		return
	}
	*p = (*p)[:0]
	bufPool.Put(p)
}

func derefTypeValue(v reflect.Value) (reflect.Type, reflect.Value) {
	t := v.Type()
	for t.Kind() == reflect.Ptr {
		v = v.Elem()
		t = t.Elem()
	}
	return t, v
}

// Marshal serializes value using reg's registered codec for its concrete
// type, returning a freshly sized byte slice holding exactly its wire form.
func Marshal(reg *codec.Registry, value any) ([]byte, error) {
	t, v := derefTypeValue(reflect.ValueOf(value))

	sc, ok := reg.StructByType(t)
	if !ok {
		return nil, errors.New(errors.PhaseEncode, errors.KindTypeNotMapped).
			Type(t.Name()).Detail("serialization type not mapped").Build()
	}

	size, err := sc.SizeFromValue(v)
	if err != nil {
		return nil, err
	}

	scratch := getBuf(size)
	defer putBuf(scratch)

	n, err := sc.Serialize(v, *scratch, 0)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, (*scratch)[:n])
	return out, nil
}

// Unmarshal decodes one value from buf into out, which must be a non-nil
// pointer to a registered type.
func Unmarshal(reg *codec.Registry, buf []byte, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("Unmarshal requires a non-nil pointer").Build()
	}

	t := v.Elem().Type()
	sc, ok := reg.StructByType(t)
	if !ok {
		return errors.New(errors.PhaseDecode, errors.KindTypeNotMapped).
			Type(t.Name()).Detail("serialization type not mapped").Build()
	}

	val, _, err := sc.Deserialize(buf, 0)
	if err != nil {
		return err
	}
	v.Elem().Set(val)
	return nil
}
