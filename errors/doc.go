// Package errors provides structured error types for the codec core.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Registration errors (PhaseRegister, PhaseResolve) abort startup;
// wire errors (PhaseEncode, PhaseDecode) propagate to the caller with no
// retry and no partial-write recovery.
//
// Use the Builder for ad-hoc construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		Path("items", "[3]").
//		Detail("string exceeds u16 content length").
//		Build()
//
// or one of the named constructors for the cases spec'd by the schema
// validator and the wire-I/O layer:
//
//	err := errors.AbstractType("Shape")
//	err := errors.RuntimeTypeUnmapped(errors.PhaseDecode, "unknown type id 7")
//
// All errors implement the standard error interface and support errors.Is.
package errors
