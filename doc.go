// Package netcodec is a compact binary serializer for low-latency game
// networking. User types are registered once against a Registry (codec
// resolution, schema validation, and program compilation all happen at
// registration); every subsequent Marshal/Unmarshal call runs the
// already-compiled program against a buffer with no further reflection
// beyond field access.
//
// Typical use:
//
//	reg := codec.NewRegistry()
//	m, _ := mapping.For(Position{}).Field("X").Field("Y").Build()
//	reg.Map(m)
//	buf, _ := netcodec.Marshal(reg, Position{X: 1, Y: 2})
//	var out Position
//	netcodec.Unmarshal(reg, buf, &out)
package netcodec
