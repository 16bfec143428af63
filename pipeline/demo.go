package pipeline

import "github.com/streamkit/mediad/object"

// VideoTestSourceProps models a videotestsrc-flavored element. FrameRate is
// declared but has no resource adapter (float), and Seed is policy-hidden;
// both exist so the error branches of the property layer stay reachable in a
// live graph.
type VideoTestSourceProps struct {
	Pattern    string  `prop:"pattern"`
	IsLive     bool    `prop:"is-live,ro"`
	NumBuffers int     `prop:"num-buffers"`
	FrameRate  float64 `prop:"framerate,ro"`
	Seed       int     `prop:"seed,internal"`
}

// VolumeProps models a volume element.
type VolumeProps struct {
	Volume int  `prop:"volume"`
	Mute   bool `prop:"mute"`
}

// FakeSinkProps models a fakesink-flavored element. Dump is write-only:
// structurally present, never readable.
type FakeSinkProps struct {
	Sync        bool   `prop:"sync"`
	LastMessage string `prop:"last-message,ro"`
	Dump        string `prop:"dump,wo"`
}

// Demo is a small pre-wired graph used by the inspector: a test source, a
// volume filter, and a fake sink under one pipeline. The props pointers stay
// exposed so hosts (and demos) can mutate live values.
type Demo struct {
	Pipeline *Pipeline
	Source   *Element
	Volume   *Element
	Sink     *Element

	SourceProps *VideoTestSourceProps
	VolumeProps *VolumeProps
	SinkProps   *FakeSinkProps
}

// NewDemo builds and registers the demo graph.
func NewDemo(reg *object.Registry) (*Demo, error) {
	srcProps := &VideoTestSourceProps{
		Pattern:    "smpte",
		NumBuffers: -1,
		FrameRate:  30,
		Seed:       4242,
	}
	src, err := NewElement(reg, "src0", "videotestsrc", srcProps)
	if err != nil {
		return nil, err
	}

	volProps := &VolumeProps{Volume: 10}
	vol, err := NewElement(reg, "vol0", "volume", volProps)
	if err != nil {
		return nil, err
	}

	sinkProps := &FakeSinkProps{Sync: true, LastMessage: "ready"}
	sink, err := NewElement(reg, "sink0", "fakesink", sinkProps)
	if err != nil {
		return nil, err
	}

	p, err := NewPipeline(reg, "p0", "videotestsrc ! volume ! fakesink", src, sink)
	if err != nil {
		return nil, err
	}

	return &Demo{
		Pipeline:    p,
		Source:      src,
		Volume:      vol,
		Sink:        sink,
		SourceProps: srcProps,
		VolumeProps: volProps,
		SinkProps:   sinkProps,
	}, nil
}

// Release removes the whole graph from its registry.
func (d *Demo) Release() {
	ref := d.Volume.Ref()
	ref.Registry.Release(ref.Handle)
	d.Pipeline.Release()
}
