package mapping

import (
	"reflect"
	"testing"

	"github.com/wippyai/netcodec/errors"
)

type point struct {
	X int32
	Y int32
}

type mixedNullable struct {
	X *int32
	Y *int32
	I int32
	J int32
}

type withReadonlyID struct {
	ID   int32
	Name string
}

func newWithReadonlyID(id int32, name string) withReadonlyID {
	return withReadonlyID{ID: id, Name: name}
}

func TestBuildSimpleFields(t *testing.T) {
	m, err := For(point{}).Field("X").Field("Y").Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(m.Values))
	}
	if m.Activator.Arity() != 0 || !m.Activator.Default {
		t.Fatal("expected default activator")
	}
}

func TestNullableInference(t *testing.T) {
	m, err := For(mixedNullable{}).
		Field("X").Field("Y").Field("I").Field("J").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.NullableCount() != 2 {
		t.Fatalf("expected 2 nullable descriptors, got %d", m.NullableCount())
	}
}

func TestActivatorBindsAndExcludesFromValues(t *testing.T) {
	m, err := For(withReadonlyID{}).
		Field("ID", ReadOnly()).
		Field("Name").
		Activator(newWithReadonlyID, "ID", "Name").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Values) != 0 {
		t.Fatalf("expected all members consumed by activator, got %d values", len(m.Values))
	}
	if m.Activator.Arity() != 2 {
		t.Fatalf("expected arity 2, got %d", m.Activator.Arity())
	}
}

func TestReadonlyFieldWithoutActivatorFails(t *testing.T) {
	_, err := For(withReadonlyID{}).
		Field("ID", ReadOnly()).
		Field("Name").
		Build()
	if err == nil {
		t.Fatal("expected error for readonly field not bound to activator")
	}
	var e *errors.Error
	if !asError(err, &e) || e.Kind != errors.KindReadonlyField {
		t.Fatalf("expected KindReadonlyField, got %v", err)
	}
}

func TestActivatorArityMismatch(t *testing.T) {
	_, err := For(withReadonlyID{}).
		Field("ID", ReadOnly()).
		Field("Name", ReadOnly()).
		Activator(newWithReadonlyID, "ID").
		Build()
	if err == nil {
		t.Fatal("expected arity mismatch error")
	}
	var e *errors.Error
	if !asError(err, &e) || e.Kind != errors.KindActivatorArity {
		t.Fatalf("expected KindActivatorArity, got %v", err)
	}
}

func TestMissingFieldHint(t *testing.T) {
	_, err := For(point{}).Field("Z").Build()
	if err == nil {
		t.Fatal("expected error for nonexistent field hint")
	}
	var e *errors.Error
	if !asError(err, &e) || e.Kind != errors.KindMemberHint {
		t.Fatalf("expected KindMemberHint, got %v", err)
	}
}

func TestAbstractTypeRejected(t *testing.T) {
	var iface any = struct{ V int }{}
	ifaceType := reflect.TypeOf(&iface).Elem()
	b := &Builder{typ: ifaceType, byName: map[string]*Descriptor{}}
	_, err := b.Build()
	if err == nil {
		t.Fatal("expected abstract type error")
	}
	var e *errors.Error
	if !asError(err, &e) || e.Kind != errors.KindAbstractType {
		t.Fatalf("expected KindAbstractType, got %v", err)
	}
}

func TestPropertyReadOnlyInValuesFails(t *testing.T) {
	_, err := For(point{}).
		Property("Computed", reflect.TypeOf(int32(0)),
			func(v reflect.Value) reflect.Value { return v.FieldByName("X") },
			nil).
		Build()
	if err == nil {
		t.Fatal("expected read-only misuse error for a value without a setter")
	}
	var e *errors.Error
	if !asError(err, &e) || e.Kind != errors.KindMemberAccess {
		t.Fatalf("expected KindMemberAccess, got %v", err)
	}
}

func asError(err error, target **errors.Error) bool {
	e, ok := err.(*errors.Error)
	if ok {
		*target = e
	}
	return ok
}
