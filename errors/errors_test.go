package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(PhaseEncode, KindOverflow).
		Path("items", "[3]").
		Type("string").
		Detail("content length %d exceeds u16", 70000).
		Build()

	got := err.Error()
	for _, want := range []string{"[encode]", "overflow", "items.[3]", "type string", "70000"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	a := New(PhaseRegister, KindAbstractType).Build()
	b := New(PhaseRegister, KindAbstractType).Detail("different detail").Build()
	c := New(PhaseResolve, KindAbstractType).Build()

	if !errors.Is(a, b) {
		t.Error("expected same phase+kind errors to match via Is")
	}
	if errors.Is(a, c) {
		t.Error("expected different phase to not match via Is")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseDecode, KindInvalidData).Cause(cause).Build()

	if errors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return cause")
	}
}

func TestNamedConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"abstract", AbstractType("Shape"), KindAbstractType},
		{"no-ctor", NoParameterlessConstructor("Widget"), KindNoActivator},
		{"arity", ActivatorArityMismatch("Widget", 3), KindActivatorArity},
		{"readonly", ReadonlyFieldMisuse("Widget", "ID"), KindReadonlyField},
		{"member-access", MemberAccessMisuse("Widget", "Name", "writing"), KindMemberAccess},
		{"member-hint", MemberHintNotFound("Widget", "Ghost"), KindMemberHint},
		{"codec-not-found", CodecNotFound("Widget"), KindCodecNotFound},
		{"program-mismatch", ProgramCountMismatch("Widget", 3, 2), KindProgramMismatch},
		{"already-mapped", AlreadyMapped("Widget"), KindAlreadyMapped},
		{"nil-value", NilValue(PhaseEncode, []string{"Name"}), KindNilValue},
		{"invalid-data", InvalidData(PhaseDecode, "sparse flag set with zero elements"), KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}

func TestRuntimeTypeUnmapped(t *testing.T) {
	err := RuntimeTypeUnmapped(PhaseDecode, "unknown serialization type id 42")
	if err.Phase != PhaseDecode || err.Kind != KindTypeNotMapped {
		t.Errorf("unexpected phase/kind: %v/%v", err.Phase, err.Kind)
	}
}

func TestOutOfBounds(t *testing.T) {
	err := OutOfBounds(PhaseDecode, 12, 4)
	if !strings.Contains(err.Error(), "need 12 bytes, have 4") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
