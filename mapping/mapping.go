package mapping

import "reflect"

// ObjectMapping is (Type, Activator, ordered assignable Values): the full
// description the program compiler consumes. Values keeps declared order;
// program.Compile derives the on-wire order from it: activator values first,
// in activator-parameter order, then the non-nullable assignable values,
// then the nullable ones, each group in declared order. Serialize and
// deserialize use the same order.
type ObjectMapping struct {
	Type      reflect.Type
	Activator *Activator
	Values    []*Descriptor // post-construction assignable descriptors, declared order
}

// AllDescriptors returns the full serialized schema for the type: activator
// parameters first (activator-parameter order), then assignable values
// (declared order). This is schema order, not wire order: program.Compile
// moves nullable assignable values after the non-nullable ones.
func (m *ObjectMapping) AllDescriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(m.Activator.Params)+len(m.Values))
	out = append(out, m.Activator.Params...)
	out = append(out, m.Values...)
	return out
}

// NullableCount returns how many descriptors in the full schema participate
// in the null mask.
func (m *ObjectMapping) NullableCount() int {
	n := 0
	for _, d := range m.AllDescriptors() {
		if d.ParticipatesInNullMask() {
			n++
		}
	}
	return n
}
