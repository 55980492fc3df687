// Package mapping implements the fluent object-mapping builder: which
// fields and properties of a user type participate in (de)serialization,
// how the type is constructed, and in what order values appear on the wire.
//
// Grounded on transcoder/compiler.go's reflect-driven Go-side field
// resolution (exported-field walk, tag matching) generalized to cover both
// direct field access and getter/setter "property" access, plus an
// optional parameterized activator.
package mapping

import "reflect"

// AccessKind names how a descriptor reaches the underlying value.
type AccessKind uint8

const (
	// AccessField reads/writes an exported struct field directly.
	AccessField AccessKind = iota
	// AccessProperty reads/writes through getter/setter functions.
	AccessProperty
)

// Descriptor identifies one member of a user type participating in
// (de)serialization.
type Descriptor struct {
	Name       string
	Access     AccessKind
	ValueType  reflect.Type
	FieldIndex []int // AccessField: reflect.Value.FieldByIndex path

	// AccessProperty only: get/set operate on the addressable struct value.
	Getter func(reflect.Value) reflect.Value
	Setter func(reflect.Value, reflect.Value)

	Nullable  bool // declared value type is an optional (participates in the null mask)
	Readonly  bool // assignable only through the activator, never by post-construction Set
	Readable  bool
	Writable  bool

	boundByActivator bool // set once placed into an Activator's parameter list
}

// Get reads the descriptor's value out of an addressable struct value.
func (d *Descriptor) Get(obj reflect.Value) reflect.Value {
	if d.Access == AccessField {
		return obj.FieldByIndex(d.FieldIndex)
	}
	return d.Getter(obj)
}

// Set writes val into the descriptor's slot on an addressable struct value.
func (d *Descriptor) Set(obj reflect.Value, val reflect.Value) {
	if d.Access == AccessField {
		obj.FieldByIndex(d.FieldIndex).Set(val)
		return
	}
	d.Setter(obj, val)
}

// IsReferenceType reports whether the declared Go type can itself hold a nil
// value independent of the Nullable flag (slice/map/pointer/interface).
func (d *Descriptor) IsReferenceType() bool {
	switch d.ValueType.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}

// ParticipatesInNullMask reports whether this descriptor consumes a bit in
// the enclosing type's null mask. Both an optional value type
// (EmitNullableValue) and a nullable reference type (EmitNonValueReference)
// participate; the distinction only affects which op the compiler emits.
func (d *Descriptor) ParticipatesInNullMask() bool {
	return d.Nullable
}
