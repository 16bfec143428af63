package object

// Ref is a non-owning reference to a registered host object: a registry plus
// a generation-checked handle. Wrappers hold Refs so that a target released
// after wrapping turns into a clean failed lookup, never a dangling access.
//
// The zero Ref is invalid and resolves to nothing.
type Ref struct {
	Registry *Registry
	Handle   Handle
}

// IsZero reports whether the reference points at nothing by construction.
func (r Ref) IsZero() bool {
	return r.Registry == nil || r.Handle == 0
}

// Object resolves the reference. It returns false when the reference is
// zero or the target has been released.
func (r Ref) Object() (Object, bool) {
	if r.IsZero() {
		return nil, false
	}
	return r.Registry.Deref(r.Handle)
}
