package program

import (
	"reflect"
	"testing"

	"github.com/wippyai/netcodec/mapping"
)

type fakeCodec struct{}

func (fakeCodec) SizeFromValue(reflect.Value) (int, error)  { return 4, nil }
func (fakeCodec) SizeFromBuffer([]byte, int) (int, error)   { return 4, nil }
func (fakeCodec) Serialize(reflect.Value, []byte, int) (int, error) { return 4, nil }
func (fakeCodec) Deserialize([]byte, int) (reflect.Value, int, error) {
	return reflect.Value{}, 4, nil
}

func alwaysFake(reflect.Type) (ChildCodec, error) { return fakeCodec{}, nil }

type mixedNullable struct {
	X *int32
	Y *int32
	I int32
	J int32
}

func TestCompileOrderingAndNullMask(t *testing.T) {
	m, err := mapping.For(mixedNullable{}).
		Field("X").Field("Y").Field("I").Field("J").
		Build()
	if err != nil {
		t.Fatalf("mapping.Build: %v", err)
	}

	prog, err := Compile(m, alwaysFake)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if len(prog.SerializeOps) != 4 || len(prog.DeserializeOps) != 4 {
		t.Fatalf("expected 4 ops, got %d/%d", len(prog.SerializeOps), len(prog.DeserializeOps))
	}

	// I, J (non-nullable) come before X, Y (nullable) in the emitted order.
	names := make([]string, len(prog.SerializeOps))
	for i, op := range prog.SerializeOps {
		names[i] = op.Descriptor.Name
	}
	want := []string{"I", "J", "X", "Y"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("op order = %v, want prefix %v", names, want)
		}
	}

	if prog.Ranges.NonNullValue != (Range{0, 2}) {
		t.Errorf("NonNullValue range = %+v, want {0 2}", prog.Ranges.NonNullValue)
	}
	if prog.Ranges.NullableOrRef != (Range{2, 4}) {
		t.Errorf("NullableOrRef range = %+v, want {2 4}", prog.Ranges.NullableOrRef)
	}
	if prog.Ranges.NullMaskBytes != 1 {
		t.Errorf("NullMaskBytes = %d, want 1", prog.Ranges.NullMaskBytes)
	}

	xOp := prog.SerializeOps[2]
	yOp := prog.SerializeOps[3]
	if xOp.NullMaskBit != 0 || yOp.NullMaskBit != 1 {
		t.Errorf("null mask bits = %d,%d, want 0,1", xOp.NullMaskBit, yOp.NullMaskBit)
	}
	if prog.SerializeOps[0].HasNullMaskBit() || prog.SerializeOps[1].HasNullMaskBit() {
		t.Error("non-nullable ops should not carry a null mask bit")
	}
}

type activatorPair struct {
	ID   int32
	Name string
}

func newActivatorPair(id int32, name string) activatorPair {
	return activatorPair{ID: id, Name: name}
}

func TestCompileActivatorRange(t *testing.T) {
	m, err := mapping.For(activatorPair{}).
		Field("ID").Field("Name").
		Activator(newActivatorPair, "ID", "Name").
		Build()
	if err != nil {
		t.Fatalf("mapping.Build: %v", err)
	}

	prog, err := Compile(m, alwaysFake)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if prog.Ranges.Activator != (Range{0, 2}) {
		t.Errorf("Activator range = %+v, want {0 2}", prog.Ranges.Activator)
	}
	if prog.SerializeOps[0].Kind != OpEmitActivatorParam || prog.SerializeOps[1].Kind != OpEmitActivatorParam {
		t.Error("expected both ops to be activator params")
	}
}
