// Package codec implements the value-codec registry (spec.md §4.3), the
// fixed and generic codecs built on it (§4.4, §4.5), and the struct
// dispatch layer (§4.8, §4.6's interpreter).
//
// Grounded on transcoder/encoder.go + transcoder/decoder.go: both walk a
// compiled type's field list and call the resolved per-field codec in
// order, exactly as StructCodec.Serialize/Deserialize do here for a
// compiled program's ops.
package codec

import "reflect"

// Codec is the four-operation bundle every registered type exposes. It is
// structurally identical to program.ChildCodec — any Codec value can be
// assigned directly into a program.Op without an adapter.
type Codec interface {
	// Serialize writes value's wire form into buf at off and returns the
	// number of bytes written. The caller guarantees
	// off+SizeFromValue(value) <= len(buf). The struct, array, map and
	// string codecs check it cheaply (the header size, or the full size
	// for strings) and return errors.OutOfBounds on violation, without
	// re-deriving the full recursive size; the scalar, enum, optional
	// and dynamic codecs do not check it themselves.
	Serialize(value reflect.Value, buf []byte, off int) (int, error)

	// Deserialize reads one value's wire form from buf at off and returns
	// it along with the number of bytes consumed.
	Deserialize(buf []byte, off int) (reflect.Value, int, error)

	// SizeFromValue returns the wire size value would serialize to.
	SizeFromValue(value reflect.Value) (int, error)

	// SizeFromBuffer returns the wire size of the value starting at off,
	// without fully decoding it.
	SizeFromBuffer(buf []byte, off int) (int, error)
}

// GenericCodec accepts a family of concrete shapes (optional-of-T,
// array-of-T, map-of-K-V, ...) and recursively materializes a Codec for a
// specific instantiation on demand.
type GenericCodec interface {
	// Supports reports whether this generic codec covers the concrete
	// Go type t.
	Supports(t reflect.Type) bool

	// CanExtend reports whether Extend may be attempted for t. Every
	// generic codec in this package returns true; a dependent inner type
	// that cannot be resolved is reported by Extend's error instead.
	CanExtend(t reflect.Type) bool

	// Extend resolves and caches the inner codec(s) needed for t and
	// returns the specialized Codec.
	Extend(t reflect.Type, reg *Registry) (Codec, error)
}
