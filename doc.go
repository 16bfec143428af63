// Package mediad provides a uniform resource abstraction over the properties
// of live media-pipeline objects.
//
// A daemon that exposes a pipeline graph to remote clients needs to treat
// every addressable thing the same way: a pipeline, an element inside it, and
// a single "volume" property on that element all answer to one contract. This
// library supplies that contract and the reflection layer that turns an
// arbitrary host-object property into such a resource on demand.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	mediad/          Root package with the Resource and Capability contracts
//	├── property/    Property reader: resolves (object, name) into a Resource
//	├── object/      Host object system: classes, property descriptors, typed
//	│                accessors, and the generation-checked object registry
//	├── pipeline/    Demo pipeline graph built from registered host objects
//	├── errors/      Structured error types shared across the layers
//	└── cmd/inspect/ Interactive property inspector
//
// # Quick Start
//
// Register a host object and read one of its properties:
//
//	type volumeProps struct {
//	    Volume int  `prop:"volume"`
//	    Mute   bool `prop:"mute"`
//	}
//
//	reg := object.NewRegistry()
//	defer reg.Close()
//
//	vol, err := pipeline.NewElement(reg, "vol0", "volume", &volumeProps{Volume: 10})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reader := property.NewReader()
//	res, err := reader.Read(vol.Ref(), "volume")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := res.Read()
//	fmt.Println(res.Name(), v) // "volume 10"
//
// The resource returned by the reader is live: every Read fetches the current
// value from the host object, so repeated reads observe host-side changes
// without re-resolving the property.
//
// # Pass-Through Resources
//
// When a property's value already implements Resource (an element nested in a
// pipeline, for example), the reader returns it untouched. Only primitive
// properties (boolean, the integer family, string) are wrapped in ephemeral
// adapters. Any other property kind is rejected with a structured
// unsupported-type error rather than stringified; downstream serializers rely
// on the type guarantees of the three supported buckets.
//
// # Thread Safety
//
// The property layer performs no locking of its own. Callers must serialize
// access per target object; the Registry itself is safe for concurrent use.
package mediad
