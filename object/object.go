package object

// Object is the host-object contract the property layer consumes: a named
// object exposing a property table and typed accessors over it.
//
// Accessors are structural: they validate the property's existence and
// declared kind but not its read flags. Readability policy belongs to the
// caller (the property reader consults both flags before fetching).
type Object interface {
	// ObjectName returns the object's name, unique within its registry.
	ObjectName() string

	// Class returns the object's property table.
	Class() *Class

	// GetBool fetches the live value of a boolean property.
	GetBool(name string) (bool, error)

	// GetInt fetches the live value of an integer-family property, widened
	// to int64. Unsigned 64-bit values are reinterpreted bit-for-bit; the
	// original width and signedness are recovered from the descriptor, not
	// the value.
	GetInt(name string) (int64, error)

	// GetString fetches the live value of a string property.
	GetString(name string) (string, error)

	// GetValue fetches the live value of any property as an untyped value.
	GetValue(name string) (any, error)
}
