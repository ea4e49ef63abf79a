package types

// TypeID is a stable identity for a structural type. Two types compare
// equal iff their TypeIDs are equal.
type TypeID uint32

const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind discriminates the type grammar.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindUnknown marks fragments whose static type cannot be computed
	// from shape alone (identifiers, calls). Unknown matches no type.
	KindUnknown
	KindNamed
	KindTuple
	KindFn
)

// Type is a structural descriptor; Payload indexes the per-kind info
// tables inside the Interner.
type Type struct {
	Kind    Kind
	Payload uint32
}

// TupleInfo stores the element types of a tuple type.
// The zero-element tuple is the unit type ().
type TupleInfo struct {
	Elems []TypeID
}

// FnInfo stores parameter and return types of a function type.
type FnInfo struct {
	Params []TypeID
	Ret    TypeID // NoTypeID when the function has no return annotation
}
