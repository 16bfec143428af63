package object

// Kind is the declared value kind of a host object property.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindInt64
	KindUint64
	KindString
	KindFloat
	KindBytes
	KindResource
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInt:      "int",
	KindUint:     "uint",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindString:   "string",
	KindFloat:    "float",
	KindBytes:    "bytes",
	KindResource: "resource",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger reports whether the kind belongs to the integer family.
// The family is one semantic bucket: signedness and bit width are kept in
// the descriptor but collapse to a single adapter downstream.
func (k Kind) IsInteger() bool {
	return k >= KindInt && k <= KindUint64
}

// IsPrimitive reports whether the kind is a primitive value kind, as opposed
// to a nested resource.
func (k Kind) IsPrimitive() bool {
	return k != KindResource
}
