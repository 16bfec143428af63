package object

import (
	"reflect"
	"strings"
	"sync"

	"github.com/streamkit/mediad"
	"github.com/streamkit/mediad/errors"
)

var resourceType = reflect.TypeOf((*mediad.Resource)(nil)).Elem()

// classCache memoizes derived classes per struct type.
var classCache sync.Map // reflect.Type -> *Class

// ClassFor derives a Class from the exported fields of a struct type.
// host must be a non-nil pointer to a struct. Only fields carrying a `prop`
// tag become properties:
//
//	type volumeProps struct {
//		Volume int    `prop:"volume"`
//		Mute   bool   `prop:"mute"`
//		Level  int    `prop:"level,ro"`
//		Dump   string `prop:"dump,wo"`
//		Key    string `prop:"key,internal"`
//	}
//
// Tag flags: "ro" drops the writable flag, "wo" drops the structural readable
// flag, "internal" drops the policy read flag (the property stays gettable
// but is withheld from the resource API). A field whose type implements
// mediad.Resource is declared with the resource kind and passed through
// unwrapped by readers.
func ClassFor(host any) (*Class, error) {
	if host == nil {
		return nil, errors.InvalidArgument(errors.StageRegistry, "nil host object")
	}

	rv := reflect.ValueOf(host)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.New(errors.StageRegistry, errors.KindTypeMismatch).
			GoType(reflect.TypeOf(host).String()).
			Detail("host must be a non-nil pointer to a struct").
			Build()
	}

	t := rv.Elem().Type()
	if cached, ok := classCache.Load(t); ok {
		return cached.(*Class), nil
	}

	class, err := deriveClass(t)
	if err != nil {
		return nil, err
	}

	actual, _ := classCache.LoadOrStore(t, class)
	return actual.(*Class), nil
}

func deriveClass(t reflect.Type) (*Class, error) {
	class := &Class{
		name:   t.Name(),
		byName: make(map[string]int),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag, ok := f.Tag.Lookup("prop")
		if !ok || tag == "-" {
			continue
		}

		name, flags, _ := strings.Cut(tag, ",")
		if name == "" {
			return nil, errors.New(errors.StageRegistry, errors.KindInvalidArgument).
				Object(t.Name()).
				Detail("field %s has an empty property name", f.Name).
				Build()
		}
		if _, dup := class.byName[name]; dup {
			return nil, errors.New(errors.StageRegistry, errors.KindInvalidArgument).
				Object(t.Name()).
				Property(name).
				Detail("duplicate property name").
				Build()
		}

		kind, err := kindOf(f.Type)
		if err != nil {
			return nil, errors.New(errors.StageRegistry, errors.KindTypeMismatch).
				Object(t.Name()).
				Property(name).
				GoType(f.Type.String()).
				Cause(err).
				Detail("field type has no property kind").
				Build()
		}

		spec := Spec{
			Name:     name,
			Kind:     kind,
			Readable: true,
			Writable: true,
			Exposed:  true,
			field:    f.Index,
		}
		for _, flag := range strings.Split(flags, ",") {
			switch flag {
			case "":
			case "ro":
				spec.Writable = false
			case "wo":
				spec.Readable = false
			case "internal":
				spec.Exposed = false
			default:
				return nil, errors.New(errors.StageRegistry, errors.KindInvalidArgument).
					Object(t.Name()).
					Property(name).
					Detail("unknown prop flag %q", flag).
					Build()
			}
		}

		class.byName[name] = len(class.specs)
		class.specs = append(class.specs, spec)
	}

	return class, nil
}

func kindOf(t reflect.Type) (Kind, error) {
	if t.Implements(resourceType) {
		return KindResource, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return KindInt, nil
	case reflect.Int64:
		return KindInt64, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return KindUint, nil
	case reflect.Uint64:
		return KindUint64, nil
	case reflect.String:
		return KindString, nil
	case reflect.Float32, reflect.Float64:
		return KindFloat, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindBytes, nil
		}
	}

	return 0, errors.New(errors.StageRegistry, errors.KindUnsupported).
		GoType(t.String()).
		Detail("no property kind for this type").
		Build()
}
