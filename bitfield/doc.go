// Package bitfield implements the fixed-length bit vector used as the
// null-mask representation for struct and collection members, and as a
// serializable value in its own right.
//
// Bit i addresses byte i/8, position 7-(i%8) — most-significant-bit-first
// within each byte.
package bitfield
