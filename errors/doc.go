// Package errors provides structured error types for the recgen library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: access path, the shapes
// involved in a mismatch, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindNullPointer).
//		Path("fields", "mask").
//		Detail("bit array buffer is null").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BitRange(path, raw)
//	err := errors.TypeMismatch("dag", "int", v)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on (Phase, Kind).
package errors
