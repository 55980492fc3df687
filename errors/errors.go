// Package errors provides the structured failure taxonomy used across the
// codec core: schema validation at registration, codec resolution, program
// consistency checks, and wire-level bounds/routing errors.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline an error occurred.
type Phase string

const (
	PhaseRegister Phase = "register" // mapping validation, program compilation
	PhaseResolve  Phase = "resolve"  // codec registry lookups
	PhaseEncode   Phase = "encode"   // value -> bytes
	PhaseDecode   Phase = "decode"   // bytes -> value
)

// Kind categorizes the error within its phase.
type Kind string

const (
	KindAbstractType     Kind = "abstract_type"
	KindNoActivator      Kind = "no_activator"
	KindActivatorArity   Kind = "activator_arity"
	KindReadonlyField    Kind = "readonly_field"
	KindMemberAccess     Kind = "member_access"
	KindMemberHint       Kind = "member_hint"
	KindCodecNotFound    Kind = "codec_not_found"
	KindProgramMismatch  Kind = "program_mismatch"
	KindTypeNotMapped    Kind = "type_not_mapped"
	KindAlreadyMapped    Kind = "already_mapped"
	KindOverflow         Kind = "overflow"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindInvalidData      Kind = "invalid_data"
	KindNilValue         Kind = "nil_value"
)

// Error is the structured error type returned by this module.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same phase and kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New starts building an error for the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the common cases named in the spec's error taxonomy.

// AbstractType reports that a mapping was requested for an abstract/interface type.
func AbstractType(typeName string) *Error {
	return New(PhaseRegister, KindAbstractType).Type(typeName).
		Detail("can't map abstract/interface type").Build()
}

// NoParameterlessConstructor reports a type with neither a default activator
// nor an explicit parameterized one.
func NoParameterlessConstructor(typeName string) *Error {
	return New(PhaseRegister, KindNoActivator).Type(typeName).
		Detail("no parameterless constructor").Build()
}

// ActivatorArityMismatch reports a parameterized activator whose argument
// count matches no constructor on the type.
func ActivatorArityMismatch(typeName string, n int) *Error {
	return New(PhaseRegister, KindActivatorArity).Type(typeName).
		Detail("no constructor on %s accepts %d arguments", typeName, n).Build()
}

// ReadonlyFieldMisuse reports a readonly field listed in Values but not bound
// through the activator.
func ReadonlyFieldMisuse(typeName, field string) *Error {
	return New(PhaseRegister, KindReadonlyField).Type(typeName).Path(field).
		Detail("can't serialize readonly field %q outside the activator", field).Build()
}

// MemberAccessMisuse reports a write-only or read-only property used for the
// wrong direction.
func MemberAccessMisuse(typeName, member, reason string) *Error {
	return New(PhaseRegister, KindMemberAccess).Type(typeName).Path(member).
		Detail("%s can't be used for %s", member, reason).Build()
}

// MemberHintNotFound reports a hint naming a static or nonexistent member.
func MemberHintNotFound(typeName, hint string) *Error {
	return New(PhaseRegister, KindMemberHint).Type(typeName).Path(hint).
		Detail("no field/property matches serialization field hint %q", hint).Build()
}

// CodecNotFound reports that no fixed or generic codec covers a type.
func CodecNotFound(typeName string) *Error {
	return New(PhaseResolve, KindCodecNotFound).Type(typeName).
		Detail("no codec registered for type %s", typeName).Build()
}

// ProgramCountMismatch reports the serialize/deserialize op-count invariant
// being violated by the compiler.
func ProgramCountMismatch(typeName string, serializeOps, deserializeOps int) *Error {
	return New(PhaseRegister, KindProgramMismatch).Type(typeName).
		Detail("program serializer counts differ: serialize=%d deserialize=%d", serializeOps, deserializeOps).
		Build()
}

// AlreadyMapped reports a re-registration attempt for a type.
func AlreadyMapped(typeName string) *Error {
	return New(PhaseRegister, KindAlreadyMapped).Type(typeName).
		Detail("type %s is already mapped", typeName).Build()
}

// RuntimeTypeUnmapped reports a serialize call for an unregistered runtime
// type, or a deserialize call reading an id with no matching type.
func RuntimeTypeUnmapped(phase Phase, detail string) *Error {
	return New(phase, KindTypeNotMapped).Detail("%s", detail).Build()
}

// Overflow reports a length exceeding the u16 wire envelope.
func Overflow(phase Phase, path []string, detail string) *Error {
	return New(phase, KindOverflow).Path(path...).Detail("%s", detail).Build()
}

// OutOfBounds reports an offset/size that would read or write past the buffer.
func OutOfBounds(phase Phase, need, have int) *Error {
	return New(phase, KindOutOfBounds).
		Detail("need %d bytes, have %d", need, have).Build()
}

// NilValue reports a non-nullable reference member holding nil at encode time.
func NilValue(phase Phase, path []string) *Error {
	return New(phase, KindNilValue).Path(path...).
		Detail("non-nullable member is nil").Build()
}

// InvalidData reports malformed wire content that fails basic sanity checks
// (e.g. a sparse flag with zero elements, a null key in a key-value pair).
func InvalidData(phase Phase, detail string) *Error {
	return New(phase, KindInvalidData).Detail("%s", detail).Build()
}
