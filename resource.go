package mediad

// Capability is the set of operations a Resource supports.
type Capability uint8

const (
	CapRead Capability = 1 << iota
	CapWrite
)

// CanRead reports whether the set includes the read capability.
func (c Capability) CanRead() bool { return c&CapRead != 0 }

// CanWrite reports whether the set includes the write capability.
func (c Capability) CanWrite() bool { return c&CapWrite != 0 }

func (c Capability) String() string {
	switch {
	case c.CanRead() && c.CanWrite():
		return "rw"
	case c.CanRead():
		return "r"
	case c.CanWrite():
		return "w"
	default:
		return "-"
	}
}

// Resource is the uniform addressable entity exposed to the resource tree.
//
// A Resource's declared capabilities must match what its operations actually
// support: calling Read on a resource without CapRead is a programming error
// on the caller's side, not a condition this layer checks at runtime.
type Resource interface {
	// Name returns the resource identifier, unique within its owning scope.
	Name() string

	// Capabilities returns the operations this resource supports.
	Capabilities() Capability

	// Read returns the resource's current value. Implementations fetch the
	// value at call time; nothing is cached between reads.
	Read() (any, error)
}
