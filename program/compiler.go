package program

import (
	"reflect"

	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/mapping"
)

// Resolver resolves the child codec for a descriptor's declared value type.
// Implemented by the value-codec registry (codec.Registry.Resolve).
type Resolver func(valueType reflect.Type) (ChildCodec, error)

// CompiledProgram is the ordered serialize/deserialize op pair plus the
// value-range table the delegate builder / interpreter executes against.
type CompiledProgram struct {
	SerializeOps   []Op
	DeserializeOps []Op
	Ranges         ValueRangeTable
}

// Compile turns a mapping into a program: it emits ops in the order
// activator-params, then non-nullable assignable values, then
// nullable-or-reference assignable values (spec.md §4.6 step 1-2), assigns
// null-mask bit positions to every nullable-participating op across that
// whole order (step 3), and records the value-range table (step 4).
//
// serialize and deserialize ops are identical in content and order — the
// interpreter decides direction — so their counts can never differ, but the
// invariant is checked explicitly anyway since program inconsistency is a
// named registration error.
func Compile(m *mapping.ObjectMapping, resolve Resolver) (*CompiledProgram, error) {
	type bucketed struct {
		kind OpKind
		d    *mapping.Descriptor
	}

	var activatorOps, nonNull, nullableOrRef []bucketed

	for _, d := range m.Activator.Params {
		kind := OpEmitActivatorParam
		activatorOps = append(activatorOps, bucketed{kind, d})
	}

	for _, d := range m.Values {
		switch {
		case !d.Nullable:
			nonNull = append(nonNull, bucketed{OpEmitValue, d})
		case d.IsReferenceType():
			nullableOrRef = append(nullableOrRef, bucketed{OpEmitNonValueReference, d})
		default:
			nullableOrRef = append(nullableOrRef, bucketed{OpEmitNullableValue, d})
		}
	}

	ordered := make([]bucketed, 0, len(activatorOps)+len(nonNull)+len(nullableOrRef))
	ordered = append(ordered, activatorOps...)
	ordered = append(ordered, nonNull...)
	ordered = append(ordered, nullableOrRef...)

	ranges := ValueRangeTable{
		Activator:     Range{0, len(activatorOps)},
		NonNullValue:  Range{len(activatorOps), len(activatorOps) + len(nonNull)},
		NullableOrRef: Range{len(activatorOps) + len(nonNull), len(ordered)},
	}

	serializeOps := make([]Op, len(ordered))
	deserializeOps := make([]Op, len(ordered))
	nullBit := 0

	for i, b := range ordered {
		codec, err := resolve(b.d.ValueType)
		if err != nil {
			return nil, err
		}

		bit := -1
		if b.d.Nullable {
			bit = nullBit
			nullBit++
		}

		op := Op{Kind: b.kind, Descriptor: b.d, Codec: codec, NullMaskBit: bit}
		serializeOps[i] = op
		deserializeOps[i] = op
	}

	ranges.NullMaskBytes = bytesLenFromBits(nullBit)

	if len(serializeOps) != len(deserializeOps) {
		return nil, errors.ProgramCountMismatch(m.Type.Name(), len(serializeOps), len(deserializeOps))
	}

	return &CompiledProgram{
		SerializeOps:   serializeOps,
		DeserializeOps: deserializeOps,
		Ranges:         ranges,
	}, nil
}

func bytesLenFromBits(n int) int {
	return (n + 7) / 8
}
