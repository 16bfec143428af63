// Package pipeline provides host objects shaped like a media pipeline graph:
// elements built over tagged props structs, and pipelines whose boundary
// elements are resource-kind properties.
//
// Elements and pipelines implement both the host object contract (so the
// property layer can read them) and the resource contract (so they pass
// through readers unwrapped when nested in another object's property).
//
// The Demo graph wires a test source, a volume filter, and a fake sink under
// one pipeline; the inspector binary and the examples use it as a live
// target.
package pipeline
