package property

import (
	"github.com/streamkit/mediad"
	"github.com/streamkit/mediad/errors"
	"github.com/streamkit/mediad/object"
)

// The three adapters are structurally identical: a property name plus a
// non-owning reference to the target. None of them caches a value; every
// Read resolves the reference and fetches the property through the host's
// accessor for that exact kind. Construction is infallible, and readability
// is never re-validated here: the reader checked it before wrapping.

// BoolProperty exposes a boolean host property through the Resource contract.
type BoolProperty struct {
	name   string
	target object.Ref
}

func (p *BoolProperty) Name() string { return p.name }

func (p *BoolProperty) Capabilities() mediad.Capability { return mediad.CapRead }

func (p *BoolProperty) Read() (any, error) {
	obj, ok := p.target.Object()
	if !ok {
		return nil, errors.TargetGone(errors.StageAccess, p.name)
	}
	v, err := obj.GetBool(p.name)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// IntProperty exposes an integer-family host property through the Resource
// contract. Values surface as int64 regardless of the property's declared
// width or signedness; the distinction lives in the descriptor.
type IntProperty struct {
	name   string
	target object.Ref
}

func (p *IntProperty) Name() string { return p.name }

func (p *IntProperty) Capabilities() mediad.Capability { return mediad.CapRead }

func (p *IntProperty) Read() (any, error) {
	obj, ok := p.target.Object()
	if !ok {
		return nil, errors.TargetGone(errors.StageAccess, p.name)
	}
	v, err := obj.GetInt(p.name)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// StringProperty exposes a string host property through the Resource
// contract. Encoding is the host's business; bytes pass through unvalidated.
type StringProperty struct {
	name   string
	target object.Ref
}

func (p *StringProperty) Name() string { return p.name }

func (p *StringProperty) Capabilities() mediad.Capability { return mediad.CapRead }

func (p *StringProperty) Read() (any, error) {
	obj, ok := p.target.Object()
	if !ok {
		return nil, errors.TargetGone(errors.StageAccess, p.name)
	}
	v, err := obj.GetString(p.name)
	if err != nil {
		return nil, err
	}
	return v, nil
}
