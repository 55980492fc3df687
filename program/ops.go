// Package program compiles an object mapping into the ordered serialize and
// deserialize op lists the struct codec executes, plus the value-range table
// that partitions those ops into activator / non-nullable-value /
// nullable-or-reference segments (spec.md §3, §4.6).
//
// Grounded on transcoder/compiler.go's compile-time tree walk, which turns a
// type description into a flat, offset-annotated plan once per type rather
// than re-deriving it via reflection on every call.
package program

import (
	"reflect"

	"github.com/wippyai/netcodec/mapping"
)

// ChildCodec is the four-operation bundle a resolved op needs from the
// value-codec registry. Defined here (rather than imported from codec) so
// that codec can depend on program without a cycle: codec's registry
// produces values satisfying this interface, program only consumes it.
type ChildCodec interface {
	SizeFromValue(v reflect.Value) (int, error)
	SizeFromBuffer(buf []byte, off int) (int, error)
	Serialize(v reflect.Value, buf []byte, off int) (int, error)
	Deserialize(buf []byte, off int) (reflect.Value, int, error)
}

// OpKind names one of the four serialization-op variants from spec.md §3.
type OpKind uint8

const (
	// OpEmitValue writes/reads a non-nullable value-type member directly.
	OpEmitValue OpKind = iota
	// OpEmitNullableValue writes/reads an optional value-type member,
	// consulting a null-mask bit to decide whether the payload is present.
	OpEmitNullableValue
	// OpEmitNonValueReference writes/reads a nullable reference-type
	// member, consulting a null-mask bit.
	OpEmitNonValueReference
	// OpEmitActivatorParam writes/reads a member that also feeds the
	// activator; NullMaskBit is only meaningful when Descriptor.Nullable.
	OpEmitActivatorParam
)

// Op is one instruction in a compiled program: exactly one descriptor bound
// to exactly one resolved child codec.
type Op struct {
	Kind        OpKind
	Descriptor  *mapping.Descriptor
	Codec       ChildCodec
	NullMaskBit int // -1 when the op does not consult the null mask
}

// HasNullMaskBit reports whether this op consults/sets a null-mask bit.
func (o Op) HasNullMaskBit() bool {
	return o.NullMaskBit >= 0
}
