package codec

import (
	"fmt"
	"math"

	"github.com/wippyai/netcodec/errors"
)

// maxWireLength is the largest value a ContentLength/CollectionLength field
// can carry; spec.md §6 fixes both at u16 width.
const maxWireLength = math.MaxUint16

// checkLength guards a computed wire length against u16 overflow before it
// is cast into a ContentLength/CollectionLength field. This is not excused
// by the Non-goal around hostile input (spec.md §1) — that Non-goal covers
// malformed bytes arriving over the wire, not a legitimate caller-supplied
// value this module is asked to encode and that happens to exceed the MTU
// (spec.md §7, "Bounds / overflow").
func checkLength(phase errors.Phase, typeName, field string, n int) error {
	if n > maxWireLength {
		return errors.Overflow(phase, []string{typeName},
			fmt.Sprintf("%s %d exceeds u16 (%d) for %s", field, n, maxWireLength, typeName))
	}
	return nil
}

// checkCapacity guards the precondition every Serialize call states in
// spec.md §6 (off + size_from_value(value) <= buf.len), returning a
// structured error instead of letting an undersized buffer panic mid-write.
func checkCapacity(phase errors.Phase, buf []byte, off, size int) error {
	if off+size > len(buf) {
		return errors.OutOfBounds(phase, size, len(buf)-off)
	}
	return nil
}
