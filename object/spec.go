package object

// Spec describes one property of a host object class.
//
// Specs are owned by the Class they belong to. Consumers query them and must
// not rely on mutating a returned copy.
type Spec struct {
	Name     string
	Kind     Kind
	Readable bool
	Writable bool

	// Exposed is the policy read flag, distinct from the structural Readable
	// flag. A property can be structurally gettable yet withheld from the
	// resource API; both flags must be set for a read to proceed.
	Exposed bool

	// field is the reflect index path into the backing struct.
	field []int
}

// Class is the property table of a host object type.
type Class struct {
	name   string
	specs  []Spec
	byName map[string]int
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Lookup returns the descriptor for the named property.
func (c *Class) Lookup(name string) (Spec, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Spec{}, false
	}
	return c.specs[i], true
}

// Specs returns the class's property descriptors in declaration order.
// The returned slice is shared; callers must not modify it.
func (c *Class) Specs() []Spec { return c.specs }

// Len returns the number of properties in the class.
func (c *Class) Len() int { return len(c.specs) }
