package errors

import (
	"fmt"
	"strings"
)

// Stage indicates where in a property read the error occurred
type Stage string

const (
	StageResolve  Stage = "resolve"  // descriptor lookup and validation
	StageAccess   Stage = "access"   // value fetch from the host object
	StageWrap     Stage = "wrap"     // adapter construction and dispatch
	StageRegistry Stage = "registry" // object registration and class derivation
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindNotReadable     Kind = "not_readable"
	KindUnsupported     Kind = "unsupported_type"
	KindTargetGone      Kind = "target_gone"
	KindTypeMismatch    Kind = "type_mismatch"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Stage    Stage
	Kind     Kind
	Object   string
	Property string
	GoType   string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Property != "" {
		b.WriteString(" at ")
		if e.Object != "" {
			b.WriteString(e.Object)
			b.WriteByte('.')
		}
		b.WriteString(e.Property)
	} else if e.Object != "" {
		b.WriteString(" at ")
		b.WriteString(e.Object)
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(stage Stage, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Stage: stage,
			Kind:  kind,
		},
	}
}

// Object sets the host object name
func (b *Builder) Object(name string) *Builder {
	b.err.Object = name
	return b
}

// Property sets the property name
func (b *Builder) Property(name string) *Builder {
	b.err.Property = name
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates a caller-error for a nil target or empty name
func InvalidArgument(stage Stage, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// NotFound creates an error for a property missing from an object's class
func NotFound(object, property string) *Error {
	return &Error{
		Stage:    StageResolve,
		Kind:     KindNotFound,
		Object:   object,
		Property: property,
		Detail:   fmt.Sprintf("no property %q on %q", property, object),
	}
}

// NotReadable creates an error for a property denied by its read flags
func NotReadable(object, property string) *Error {
	return &Error{
		Stage:    StageResolve,
		Kind:     KindNotReadable,
		Object:   object,
		Property: property,
		Detail:   fmt.Sprintf("property %q is not readable", property),
	}
}

// Unsupported creates an error for a property kind outside the wrappable set
func Unsupported(object, property, kind string) *Error {
	return &Error{
		Stage:    StageWrap,
		Kind:     KindUnsupported,
		Object:   object,
		Property: property,
		Detail:   fmt.Sprintf("property kind %s has no resource adapter", kind),
	}
}

// TargetGone creates an error for a host object released since the reference
// was taken
func TargetGone(stage Stage, property string) *Error {
	return &Error{
		Stage:    stage,
		Kind:     KindTargetGone,
		Property: property,
		Detail:   "target object no longer registered",
	}
}

// TypeMismatch creates an error for a value that does not match its
// declared property kind
func TypeMismatch(stage Stage, object, property, goType, detail string) *Error {
	return &Error{
		Stage:    stage,
		Kind:     KindTypeMismatch,
		Object:   object,
		Property: property,
		GoType:   goType,
		Detail:   detail,
	}
}
