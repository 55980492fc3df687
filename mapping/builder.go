package mapping

import (
	"fmt"
	"reflect"

	"github.com/wippyai/netcodec/errors"
)

// FieldOption tweaks a descriptor at registration time.
type FieldOption func(*Descriptor)

// ReadOnly marks a descriptor as assignable only through the activator.
func ReadOnly() FieldOption { return func(d *Descriptor) { d.Readonly = true } }

// Nullable forces a descriptor to participate in the null mask regardless of
// the default inferred from its Go type.
func Nullable() FieldOption { return func(d *Descriptor) { d.Nullable = true } }

// NotNullable forces a descriptor to never participate in the null mask.
func NotNullable() FieldOption { return func(d *Descriptor) { d.Nullable = false } }

// Builder fluently describes which members of a Go struct type participate
// in (de)serialization, mirroring transcoder.Compiler's reflect-driven field
// walk but generalized to also cover property (getter/setter) access and an
// explicit parameterized activator.
type Builder struct {
	typ       reflect.Type
	order     []*Descriptor
	byName    map[string]*Descriptor
	activator *Activator
	ctorNames []string
	err       error
}

// For starts a mapping builder for the given sample value's type (a struct
// value, or a pointer to one).
func For(sample any) *Builder {
	t := reflect.TypeOf(sample)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return &Builder{typ: t, byName: make(map[string]*Descriptor)}
}

func inferNullable(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr
}

// Field registers an exported struct field by its Go name.
func (b *Builder) Field(name string, opts ...FieldOption) *Builder {
	if b.err != nil {
		return b
	}
	sf, ok := b.typ.FieldByName(name)
	if !ok || !sf.IsExported() {
		b.err = errors.MemberHintNotFound(b.typ.Name(), name)
		return b
	}

	d := &Descriptor{
		Name:       name,
		Access:     AccessField,
		ValueType:  sf.Type,
		FieldIndex: sf.Index,
		Nullable:   inferNullable(sf.Type),
		Readable:   true,
		Writable:   true,
	}
	for _, opt := range opts {
		opt(d)
	}
	b.order = append(b.order, d)
	b.byName[name] = d
	return b
}

// Property registers a getter/setter pair for a computed member. Pass a nil
// setter for a read-only property, or a nil getter for a write-only one;
// Build rejects either if the resulting descriptor ends up needing the
// missing direction.
func (b *Builder) Property(name string, valueType reflect.Type, get func(reflect.Value) reflect.Value, set func(reflect.Value, reflect.Value), opts ...FieldOption) *Builder {
	if b.err != nil {
		return b
	}
	d := &Descriptor{
		Name:      name,
		Access:    AccessProperty,
		ValueType: valueType,
		Getter:    get,
		Setter:    set,
		Nullable:  inferNullable(valueType),
		Readable:  get != nil,
		Writable:  set != nil,
	}
	for _, opt := range opts {
		opt(d)
	}
	b.order = append(b.order, d)
	b.byName[name] = d
	return b
}

// Activator binds a constructor function to an ordered list of previously
// registered member names, by name. The constructor is called with those
// members' values in the given order; its result becomes the constructed
// object, and the named members are excluded from the post-construction
// assignable set.
func (b *Builder) Activator(ctor any, memberNames ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.ctorNames = memberNames
	params := make([]*Descriptor, 0, len(memberNames))
	for _, name := range memberNames {
		d, ok := b.byName[name]
		if !ok {
			b.err = errors.MemberHintNotFound(b.typ.Name(), name)
			return b
		}
		params = append(params, d)
	}
	b.activator = NewParameterizedActivator(ctor, params)
	return b
}

// Build validates the accumulated registrations and returns the finished
// mapping, enforcing the schema rules in spec.md §4.7.
func (b *Builder) Build() (*ObjectMapping, error) {
	if b.err != nil {
		return nil, b.err
	}

	typeName := b.typ.Name()

	if b.typ.Kind() == reflect.Interface {
		return nil, errors.AbstractType(typeName)
	}

	activator := b.activator
	if activator == nil {
		activator = NewDefaultActivator()
	} else {
		ctorType, ok := activator.ctorFuncType()
		if !ok || ctorType.Kind() != reflect.Func || ctorType.NumIn() != len(b.ctorNames) {
			return nil, errors.ActivatorArityMismatch(typeName, len(b.ctorNames))
		}
	}

	boundNames := make(map[string]bool, len(activator.Params))
	for _, p := range activator.Params {
		if !p.Readable {
			return nil, errors.MemberAccessMisuse(typeName, p.Name, "reading")
		}
		boundNames[p.Name] = true
	}

	values := make([]*Descriptor, 0, len(b.order))
	for _, d := range b.order {
		if boundNames[d.Name] {
			continue
		}
		if d.Readonly {
			return nil, errors.ReadonlyFieldMisuse(typeName, d.Name)
		}
		if !d.Readable {
			return nil, errors.MemberAccessMisuse(typeName, d.Name, "reading")
		}
		if !d.Writable {
			return nil, errors.MemberAccessMisuse(typeName, d.Name, "writing")
		}
		values = append(values, d)
	}

	return &ObjectMapping{
		Type:      b.typ,
		Activator: activator,
		Values:    values,
	}, nil
}

func (b *Builder) String() string {
	return fmt.Sprintf("mapping.Builder{%s, %d members}", b.typ, len(b.order))
}
