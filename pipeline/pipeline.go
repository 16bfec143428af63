package pipeline

import (
	"github.com/streamkit/mediad"
	"github.com/streamkit/mediad/object"
)

type pipelineProps struct {
	Description string   `prop:"description,ro"`
	Playing     bool     `prop:"playing,ro"`
	Source      *Element `prop:"source,ro"`
	Sink        *Element `prop:"sink,ro"`
}

// Pipeline is the top-level host object of a graph. Its source and sink
// elements are resource-kind properties: reading them through the property
// layer yields the elements themselves, not wrappers.
type Pipeline struct {
	*object.Base
	props   *pipelineProps
	ref     object.Ref
	members []object.Ref
}

// NewPipeline registers a pipeline over the given boundary elements, which
// must already be registered in reg.
func NewPipeline(reg *object.Registry, name, description string, src, sink *Element) (*Pipeline, error) {
	props := &pipelineProps{
		Description: description,
		Source:      src,
		Sink:        sink,
	}

	base, err := object.NewBase(name, props)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		Base:    base,
		props:   props,
		members: []object.Ref{src.Ref(), sink.Ref()},
	}
	h, err := reg.Register(p)
	if err != nil {
		return nil, err
	}
	p.ref = object.Ref{Registry: reg, Handle: h}
	return p, nil
}

// Ref returns the pipeline's registry reference.
func (p *Pipeline) Ref() object.Ref { return p.ref }

// SetPlaying flips the pipeline's playing state. Host-side mutation, visible
// to any previously wrapped "playing" resource on its next read.
func (p *Pipeline) SetPlaying(playing bool) { p.props.Playing = playing }

// Release removes the pipeline and its member elements from the registry.
// References and wrappers taken earlier fail their next resolution.
func (p *Pipeline) Release() {
	for _, m := range p.members {
		m.Registry.Release(m.Handle)
	}
	p.ref.Registry.Release(p.ref.Handle)
}

// Name implements mediad.Resource.
func (p *Pipeline) Name() string { return p.ObjectName() }

// Capabilities implements mediad.Resource.
func (p *Pipeline) Capabilities() mediad.Capability { return mediad.CapRead }

// Read implements mediad.Resource: a snapshot of the pipeline's readable
// primitive properties.
func (p *Pipeline) Read() (any, error) {
	return snapshot(p)
}
