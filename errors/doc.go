// Package errors provides structured error types for the mediad library.
//
// Errors are categorized by Stage (where in a property read the error
// occurred) and Kind (error category). The Error type includes rich context:
// the host object and property names, the offending Go type, and a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.StageAccess, errors.KindTypeMismatch).
//		Object("mixer").
//		Property("gain").
//		GoType("float64").
//		Detail("declared integer, stored float").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound("mixer", "bitrate")
//	err := errors.TargetGone(errors.StageAccess, "volume")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
