package codec

import (
	"reflect"

	"github.com/wippyai/netcodec/errors"
	"github.com/wippyai/netcodec/mapping"
	"github.com/wippyai/netcodec/program"
	"go.uber.org/zap"
)

// Registry is the process-wide, append-only catalog of per-type codecs
// described in spec.md §4.3 and §5. Map() is not required to be
// thread-safe; once all registrations are complete, Serialize/Deserialize/
// Size* are read-only on shared state and safe for unsynchronized
// concurrent calls, provided each call owns its buffer region.
type Registry struct {
	fixed       map[reflect.Type]Codec
	generics    []GenericCodec
	extended    map[reflect.Type]Codec // cached generic instantiations
	structs     map[reflect.Type]*StructCodec
	structsByID map[uint16]*StructCodec
	nextID      uint16
}

// NewRegistry builds a registry preloaded with the fixed primitive/string
// codecs and the standard generic codecs (optional, array, map, enum,
// dynamic).
func NewRegistry() *Registry {
	r := &Registry{
		fixed:       make(map[reflect.Type]Codec),
		extended:    make(map[reflect.Type]Codec),
		structs:     make(map[reflect.Type]*StructCodec),
		structsByID: make(map[uint16]*StructCodec),
	}
	registerPrimitives(r)
	r.generics = []GenericCodec{
		&optionalGeneric{},
		&arrayGeneric{},
		&mapGeneric{},
		&enumGeneric{},
		&dynamicGeneric{},
	}
	return r
}

// RegisterFixed binds a concrete codec to exactly one Go type.
func (r *Registry) RegisterFixed(t reflect.Type, c Codec) {
	r.fixed[t] = c
}

// Resolve implements the resolution algorithm in spec.md §4.3: a fixed
// codec for t, else a cached generic instantiation, else a registered struct
// codec (for nested struct fields), else the unique matching generic codec's
// extension, else errors.CodecNotFound.
func (r *Registry) Resolve(t reflect.Type) (Codec, error) {
	if c, ok := r.fixed[t]; ok {
		return c, nil
	}
	if c, ok := r.extended[t]; ok {
		return c, nil
	}
	if sc, ok := r.structs[t]; ok {
		return sc, nil
	}

	for _, g := range r.generics {
		if !g.Supports(t) {
			continue
		}
		if !g.CanExtend(t) {
			return nil, errors.CodecNotFound(t.String())
		}
		c, err := g.Extend(t, r)
		if err != nil {
			return nil, err
		}
		r.extended[t] = c
		return c, nil
	}

	return nil, errors.CodecNotFound(t.String())
}

// asResolver adapts Resolve to program.Resolver.
func (r *Registry) asResolver() program.Resolver {
	return func(t reflect.Type) (program.ChildCodec, error) {
		return r.Resolve(t)
	}
}

// Map registers a user type's object mapping: compiles its program,
// resolves every member's child codec, builds the struct codec, and
// assigns the next dense 16-bit serialization type id.
func (r *Registry) Map(m *mapping.ObjectMapping) (*StructCodec, error) {
	if _, already := r.structs[m.Type]; already {
		return nil, errors.AlreadyMapped(m.Type.Name())
	}

	prog, err := program.Compile(m, r.asResolver())
	if err != nil {
		logger.Error("failed to compile program",
			zap.String("type", m.Type.Name()), zap.Error(err))
		return nil, err
	}

	id := r.nextID
	sc := &StructCodec{
		typ:     m.Type,
		id:      id,
		mapping: m,
		program: prog,
	}

	r.structs[m.Type] = sc
	r.structsByID[id] = sc
	r.nextID++

	logger.Info("mapped type",
		zap.String("type", m.Type.Name()),
		zap.Uint16("id", id),
		zap.Int("ops", len(prog.SerializeOps)),
		zap.Int("null_mask_bytes", prog.Ranges.NullMaskBytes))

	return sc, nil
}

// StructByID looks up a registered struct codec by its serialization type
// id, as used by polymorphic deserialize dispatch.
func (r *Registry) StructByID(id uint16) (*StructCodec, bool) {
	sc, ok := r.structsByID[id]
	return sc, ok
}

// StructByType looks up a registered struct codec by its Go type, as used
// by polymorphic serialize dispatch.
func (r *Registry) StructByType(t reflect.Type) (*StructCodec, bool) {
	sc, ok := r.structs[t]
	return sc, ok
}
