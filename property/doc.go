// Package property resolves named host-object properties into uniform
// resources.
//
// The reader is the hinge between the host object system, which exposes
// properties generically (name, kind, access flags), and the resource tree,
// which must treat every addressable thing identically:
//
//	reader := property.NewReader()
//	res, err := reader.Read(target, "volume")
//	if err != nil {
//	    // structured: not_found, not_readable, unsupported_type, ...
//	}
//	v, err := res.Read()
//
// # Resolution
//
// Read validates its arguments, resolves the target reference, looks the
// property up in the object's class, and checks both read flags. If the
// property's value is already a Resource it is returned unchanged (the
// pass-through path). Otherwise the declared kind selects an adapter:
//
//	kind            adapter
//	─────────────────────────────────
//	bool            BoolProperty
//	integer family  IntProperty
//	string          StringProperty
//	anything else   unsupported_type
//
// # Adapters
//
// Adapters are ephemeral read-only resources bound to (target, name). They
// hold a non-owning reference, cache nothing, and fetch the live value on
// every Read; a target released after wrapping yields a target_gone error,
// never stale data. A new adapter is built on every reader call.
package property
