package ast

import (
	"fluo/internal/source"
)

// Type expressions as written in source. Structural identity lives in
// internal/types; these nodes only record shape and spans.

type TypeKind uint8

const (
	TypeNamed TypeKind = iota
	TypeTuple
	TypeFn
)

type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

type (
	TypeNamedData struct {
		Path []source.StringID
	}
	TypeTupleData struct {
		Elems []TypeID
	}
	TypeFnData struct {
		Params []TypeID
		Ret    TypeID // NoTypeID when no return annotation
	}
)

// Types manages allocation of type expressions.
type Types struct {
	Arena  *Arena[Type]
	Nameds *Arena[TypeNamedData]
	Tuples *Arena[TypeTupleData]
	Fns    *Arena[TypeFnData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{
		Arena:  NewArena[Type](capHint),
		Nameds: NewArena[TypeNamedData](capHint),
		Tuples: NewArena[TypeTupleData](capHint),
		Fns:    NewArena[TypeFnData](capHint),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

// NewNamed creates a named (namespace path) type.
func (t *Types) NewNamed(span source.Span, path []source.StringID) TypeID {
	payload := t.Nameds.Allocate(TypeNamedData{Path: path})
	return t.new(TypeNamed, span, PayloadID(payload))
}

// Named returns the named-type data for the given type ID.
func (t *Types) Named(id TypeID) (*TypeNamedData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeNamed {
		return nil, false
	}
	return t.Nameds.Get(uint32(tt.Payload)), true
}

// NewTuple creates a tuple type; zero elements is the unit type ().
func (t *Types) NewTuple(span source.Span, elems []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{Elems: elems})
	return t.new(TypeTuple, span, PayloadID(payload))
}

// Tuple returns the tuple-type data for the given type ID.
func (t *Types) Tuple(id TypeID) (*TypeTupleData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(tt.Payload)), true
}

// NewFn creates a function type.
func (t *Types) NewFn(span source.Span, params []TypeID, ret TypeID) TypeID {
	payload := t.Fns.Allocate(TypeFnData{Params: params, Ret: ret})
	return t.new(TypeFn, span, PayloadID(payload))
}

// Fn returns the function-type data for the given type ID.
func (t *Types) Fn(id TypeID) (*TypeFnData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeFn {
		return nil, false
	}
	return t.Fns.Get(uint32(tt.Payload)), true
}
