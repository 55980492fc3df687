package netcodec

import (
	"reflect"
	"testing"

	"github.com/wippyai/netcodec/codec"
	"github.com/wippyai/netcodec/mapping"
)

type vec2 struct {
	X float32
	Y float32
}

type playerState struct {
	ID     uint32
	Name   string
	Pos    vec2
	Health *int32
	Tags   []string
	Scores map[string]int32
}

func newPlayerRegistry(t *testing.T) *codec.Registry {
	t.Helper()
	reg := codec.NewRegistry()

	vecMapping, err := mapping.For(vec2{}).Field("X").Field("Y").Build()
	if err != nil {
		t.Fatalf("vec2 mapping: %v", err)
	}
	if _, err := reg.Map(vecMapping); err != nil {
		t.Fatalf("map vec2: %v", err)
	}

	playerMapping, err := mapping.For(playerState{}).
		Field("ID").Field("Name").Field("Pos").Field("Health").Field("Tags").Field("Scores").
		Build()
	if err != nil {
		t.Fatalf("playerState mapping: %v", err)
	}
	if _, err := reg.Map(playerMapping); err != nil {
		t.Fatalf("map playerState: %v", err)
	}

	return reg
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	reg := newPlayerRegistry(t)

	health := int32(75)
	in := playerState{
		ID:   42,
		Name: "Ada",
		Pos:  vec2{X: 1.5, Y: -2.25},
		Health: &health,
		Tags:   []string{"scout", "healer"},
		Scores: map[string]int32{"round1": 10, "round2": 20},
	}

	buf, err := Marshal(reg, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out playerState
	if err := Unmarshal(reg, buf, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.ID != in.ID || out.Name != in.Name || out.Pos != in.Pos {
		t.Fatalf("scalar/nested mismatch: got %+v, want %+v", out, in)
	}
	if out.Health == nil || *out.Health != *in.Health {
		t.Fatalf("Health mismatch: got %v, want %v", out.Health, in.Health)
	}
	if !reflect.DeepEqual(out.Tags, in.Tags) {
		t.Fatalf("Tags mismatch: got %v, want %v", out.Tags, in.Tags)
	}
	if !reflect.DeepEqual(out.Scores, in.Scores) {
		t.Fatalf("Scores mismatch: got %v, want %v", out.Scores, in.Scores)
	}
}

func TestMarshalNilNullableField(t *testing.T) {
	reg := newPlayerRegistry(t)

	in := playerState{ID: 1, Name: "Bo", Pos: vec2{}, Health: nil, Tags: nil, Scores: nil}
	buf, err := Marshal(reg, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out playerState
	if err := Unmarshal(reg, buf, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Health != nil {
		t.Fatalf("Health = %v, want nil", out.Health)
	}
}

func TestMarshalUnregisteredTypeFails(t *testing.T) {
	reg := codec.NewRegistry()
	type unregistered struct{ X int32 }
	if _, err := Marshal(reg, unregistered{X: 1}); err == nil {
		t.Fatal("expected error for unregistered type")
	}
}
