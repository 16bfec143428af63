package property

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/streamkit/mediad"
	"github.com/streamkit/mediad/errors"
	"github.com/streamkit/mediad/object"
)

// Reader is the read capability: any component that can resolve a named
// property of a host object into a Resource. The resource tree calls it when
// a path segment names a property rather than a structural child.
type Reader interface {
	Read(target object.Ref, name string) (mediad.Resource, error)
}

// PropertyReader implements Reader against the host object system. It holds
// no state; a single instance serves any number of targets.
type PropertyReader struct{}

// NewReader creates a property reader.
func NewReader() *PropertyReader {
	return &PropertyReader{}
}

// Read resolves the named property of target into a Resource.
//
// A property whose value is already a Resource is returned unchanged,
// preserving its identity and capability set. Primitive properties are
// wrapped in a fresh adapter bound to (target, name); the adapter fetches
// the live value on every read.
func (p *PropertyReader) Read(target object.Ref, name string) (mediad.Resource, error) {
	if target.IsZero() {
		return nil, errors.InvalidArgument(errors.StageResolve, "zero target reference")
	}
	if name == "" {
		return nil, errors.InvalidArgument(errors.StageResolve, "empty property name")
	}

	obj, ok := target.Object()
	if !ok {
		return nil, errors.TargetGone(errors.StageResolve, name)
	}

	spec, ok := obj.Class().Lookup(name)
	if !ok {
		Logger().Debug("no such property",
			zap.String("object", obj.ObjectName()),
			zap.String("property", name))
		return nil, errors.NotFound(obj.ObjectName(), name)
	}

	// Both the structural and the policy flag must allow the read.
	if !spec.Readable || !spec.Exposed {
		Logger().Debug("property not readable",
			zap.String("object", obj.ObjectName()),
			zap.String("property", name))
		return nil, errors.NotReadable(obj.ObjectName(), name)
	}

	if spec.Kind == object.KindResource {
		return passthrough(obj, name)
	}

	return wrap(target, spec, obj.ObjectName())
}

// passthrough fetches a resource-kind property and returns its value as-is.
func passthrough(obj object.Object, name string) (mediad.Resource, error) {
	v, err := obj.GetValue(name)
	if err != nil {
		return nil, err
	}

	res, ok := v.(mediad.Resource)
	if !ok || isNil(res) {
		return nil, errors.New(errors.StageAccess, errors.KindTypeMismatch).
			Object(obj.ObjectName()).
			Property(name).
			Detail("resource-kind property holds no resource").
			Build()
	}
	return res, nil
}

// isNil catches typed-nil resources hiding behind a non-nil interface.
func isNil(res mediad.Resource) bool {
	if res == nil {
		return true
	}
	rv := reflect.ValueOf(res)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// wrap selects the adapter for a primitive property kind. The mapping is a
// closed set: boolean, the integer family, and string. Everything else is a
// hard unsupported-type error; lossy stringification would break the type
// guarantees downstream serializers rely on.
func wrap(target object.Ref, spec object.Spec, objName string) (mediad.Resource, error) {
	switch {
	case spec.Kind == object.KindBool:
		return &BoolProperty{name: spec.Name, target: target}, nil
	case spec.Kind.IsInteger():
		return &IntProperty{name: spec.Name, target: target}, nil
	case spec.Kind == object.KindString:
		return &StringProperty{name: spec.Name, target: target}, nil
	default:
		Logger().Warn("unsupported property kind",
			zap.String("object", objName),
			zap.String("property", spec.Name),
			zap.String("kind", spec.Kind.String()))
		return nil, errors.Unsupported(objName, spec.Name, spec.Kind.String())
	}
}
