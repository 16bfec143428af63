// Package object implements the host object system the property layer reads
// from: property descriptors, typed accessors, and object liveness.
//
// # Classes and Descriptors
//
// A host object's property table is a Class, derived once per Go type from
// struct tags:
//
//	type volumeProps struct {
//		Volume int  `prop:"volume"`
//		Mute   bool `prop:"mute"`
//	}
//
//	base, err := object.NewBase("vol0", &volumeProps{Volume: 10})
//
// Each descriptor records the property's declared kind and three access
// flags: Readable and Writable are structural, Exposed is policy. A read is
// permitted only when both Readable and Exposed are set.
//
// # Accessors
//
// Base fetches live values through reflection on every call:
//
//	v, err := base.GetInt("volume")
//
// Integer-family properties (signed and unsigned, 32- and 64-bit) all
// surface as int64; the descriptor keeps the original width.
//
// # Registry and Liveness
//
// Objects are registered in a Registry and referenced through Refs, which
// pair the registry with a generation-checked Handle:
//
//	reg := object.NewRegistry()
//	h, _ := reg.Register(base)
//	ref := object.Ref{Registry: reg, Handle: h}
//
//	obj, ok := ref.Object() // false once the object is released
//
// Releasing an object bumps its slot's generation, so references taken
// before the release fail cleanly afterwards. This is the mechanism behind
// the property layer's target-gone error.
//
// # Observers
//
// Register observers to track object lifecycle events:
//
//	reg.Subscribe(obs) // obs.OnObjectEvent(Event) on register/release
package object
