package program

// Range is a contiguous [Start, End) slice of a program's op list.
type Range struct {
	Start int
	End   int
}

// Len returns the number of ops the range covers.
func (r Range) Len() int { return r.End - r.Start }

// ValueRangeTable is the precomputed partition of a compiled program's ops
// into the three contiguous segments spec.md §3 describes, plus the
// null-mask byte length (0 when the type has no nullable members).
type ValueRangeTable struct {
	Activator     Range // activator-bound values, in activator-parameter order
	NonNullValue  Range // value-type non-null and non-nullable assignable values
	NullableOrRef Range // nullable-or-reference assignable values
	NullMaskBytes int
}
