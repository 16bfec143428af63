package object

import (
	"reflect"

	"github.com/streamkit/mediad/errors"
)

// Base implements Object over a tagged struct. Embed it in host object types
// and construct it with NewBase.
//
// Every accessor re-reads the backing struct field at call time; values are
// never cached. Base performs no locking: callers serialize access per
// object, per the layer's concurrency contract.
type Base struct {
	name  string
	class *Class
	host  reflect.Value
}

// NewBase derives the class of props and binds accessors to its live fields.
// props must be a non-nil pointer to a struct; the caller keeps the pointer
// and mutates fields directly to change property values.
func NewBase(name string, props any) (*Base, error) {
	if name == "" {
		return nil, errors.InvalidArgument(errors.StageRegistry, "empty object name")
	}

	class, err := ClassFor(props)
	if err != nil {
		return nil, err
	}

	return &Base{
		name:  name,
		class: class,
		host:  reflect.ValueOf(props).Elem(),
	}, nil
}

func (b *Base) ObjectName() string { return b.name }

func (b *Base) Class() *Class { return b.class }

func (b *Base) GetBool(name string) (bool, error) {
	v, err := b.field(name, KindBool)
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

func (b *Base) GetInt(name string) (int64, error) {
	spec, ok := b.class.Lookup(name)
	if !ok {
		return 0, errors.NotFound(b.name, name)
	}
	if !spec.Kind.IsInteger() {
		return 0, b.mismatch(spec, "integer")
	}

	v := b.host.FieldByIndex(spec.field)
	switch spec.Kind {
	case KindUint, KindUint64:
		return int64(v.Uint()), nil
	default:
		return v.Int(), nil
	}
}

func (b *Base) GetString(name string) (string, error) {
	v, err := b.field(name, KindString)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func (b *Base) GetValue(name string) (any, error) {
	spec, ok := b.class.Lookup(name)
	if !ok {
		return nil, errors.NotFound(b.name, name)
	}
	return b.host.FieldByIndex(spec.field).Interface(), nil
}

func (b *Base) field(name string, want Kind) (reflect.Value, error) {
	spec, ok := b.class.Lookup(name)
	if !ok {
		return reflect.Value{}, errors.NotFound(b.name, name)
	}
	if spec.Kind != want {
		return reflect.Value{}, b.mismatch(spec, want.String())
	}
	return b.host.FieldByIndex(spec.field), nil
}

func (b *Base) mismatch(spec Spec, want string) *errors.Error {
	return errors.New(errors.StageAccess, errors.KindTypeMismatch).
		Object(b.name).
		Property(spec.Name).
		Detail("property is %s, accessor wants %s", spec.Kind, want).
		Build()
}
