// Package wire implements the fixed-width little-endian byte primitives and
// the four typed protocol headers that every codec in this module is built
// from: 1/2/4/8-byte integers, IEEE-754 floats and doubles, UTF-16 code
// units, and a vectorized bulk copy.
//
// Every Read/Write here is total on a buffer of sufficient length; callers
// own bounds checking (see errors.OutOfBounds at the call sites in codec/).
package wire
