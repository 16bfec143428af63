package pipeline

import (
	"github.com/streamkit/mediad"
	"github.com/streamkit/mediad/object"
)

// Element is a host object in the pipeline graph. It implements both
// object.Object (via its embedded Base) and mediad.Resource, so an element
// stored in another object's property is passed through by readers with its
// identity intact.
type Element struct {
	*object.Base
	factory string
	ref     object.Ref
}

// NewElement builds an element over a tagged props struct and registers it.
// The caller keeps the props pointer; mutating its fields changes the live
// property values observed by subsequent reads.
func NewElement(reg *object.Registry, name, factory string, props any) (*Element, error) {
	base, err := object.NewBase(name, props)
	if err != nil {
		return nil, err
	}

	e := &Element{Base: base, factory: factory}
	h, err := reg.Register(e)
	if err != nil {
		return nil, err
	}
	e.ref = object.Ref{Registry: reg, Handle: h}
	return e, nil
}

// Factory returns the element's factory name ("videotestsrc", "volume", ...).
func (e *Element) Factory() string { return e.factory }

// Ref returns the element's registry reference.
func (e *Element) Ref() object.Ref { return e.ref }

// Name implements mediad.Resource.
func (e *Element) Name() string { return e.ObjectName() }

// Capabilities implements mediad.Resource.
func (e *Element) Capabilities() mediad.Capability { return mediad.CapRead }

// Read implements mediad.Resource: a snapshot of the element's readable
// primitive properties, keyed by property name.
func (e *Element) Read() (any, error) {
	return snapshot(e)
}

// snapshot collects the current values of an object's readable properties in
// the three supported primitive buckets. Other kinds are omitted rather than
// stringified.
func snapshot(obj object.Object) (map[string]any, error) {
	out := make(map[string]any)
	for _, spec := range obj.Class().Specs() {
		if !spec.Readable || !spec.Exposed {
			continue
		}

		var (
			v   any
			err error
		)
		switch {
		case spec.Kind == object.KindBool:
			v, err = obj.GetBool(spec.Name)
		case spec.Kind.IsInteger():
			v, err = obj.GetInt(spec.Name)
		case spec.Kind == object.KindString:
			v, err = obj.GetString(spec.Name)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		out[spec.Name] = v
	}
	return out, nil
}
