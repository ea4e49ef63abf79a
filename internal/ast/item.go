package ast

import (
	"fluo/internal/source"
)

type ItemKind uint8

const (
	ItemLet ItemKind = iota
	ItemFn
	ItemSyntax
	// ItemStmt wraps a statement produced at top level by lowering a
	// statement-category extension invocation.
	ItemStmt
)

// LetModifiers encodes pub/extern on a let declaration.
type LetModifiers uint8

const (
	LetPub LetModifiers = 1 << iota
	LetExtern
)

func (m LetModifiers) Has(flag LetModifiers) bool { return m&flag != 0 }

// LetDecl is shared by top-level let items and let statements:
// [pub] [extern] let path: Type [= value];
type LetDecl struct {
	Mods  LetModifiers
	Path  []source.StringID
	Type  TypeID
	Value ExprID // NoExprID when there is no initializer
}

// FnParam is one name: Type function parameter.
type FnParam struct {
	Name source.StringID
	Type TypeID
	Span source.Span
}

// SyntaxCategory constrains where an extension may appear.
type SyntaxCategory uint8

const (
	SyntaxStatement SyntaxCategory = iota
	SyntaxExpression
)

func (c SyntaxCategory) String() string {
	if c == SyntaxExpression {
		return "expression"
	}
	return "statement"
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

type (
	ItemLetData struct {
		Decl LetDecl
	}
	ItemFnData struct {
		Path   []source.StringID
		Params []FnParam
		Ret    TypeID // NoTypeID when no return annotation
		Body   StmtID // a StmtBlock
	}
	// ItemSyntaxData keeps the declaration site of a syntax extension.
	// The registered rule itself lives in the grammar registry; the raw
	// span lets tooling reprint the declaration verbatim.
	ItemSyntaxData struct {
		Name     source.StringID
		Category SyntaxCategory
	}
	ItemStmtData struct {
		Stmt StmtID
	}
)

// Items manages allocation of top-level items.
type Items struct {
	Arena    *Arena[Item]
	Lets     *Arena[ItemLetData]
	Fns      *Arena[ItemFnData]
	Syntaxes *Arena[ItemSyntaxData]
	Stmts    *Arena[ItemStmtData]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena:    NewArena[Item](capHint),
		Lets:     NewArena[ItemLetData](capHint),
		Fns:      NewArena[ItemFnData](capHint),
		Syntaxes: NewArena[ItemSyntaxData](capHint),
		Stmts:    NewArena[ItemStmtData](capHint),
	}
}

func (it *Items) new(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(it.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (it *Items) Get(id ItemID) *Item {
	return it.Arena.Get(uint32(id))
}

// NewLet creates a top-level let item.
func (it *Items) NewLet(span source.Span, decl LetDecl) ItemID {
	payload := it.Lets.Allocate(ItemLetData{Decl: decl})
	return it.new(ItemLet, span, PayloadID(payload))
}

// Let returns the let data for the given item ID.
func (it *Items) Let(id ItemID) (*ItemLetData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemLet {
		return nil, false
	}
	return it.Lets.Get(uint32(item.Payload)), true
}

// NewFn creates a function item.
func (it *Items) NewFn(span source.Span, data ItemFnData) ItemID {
	payload := it.Fns.Allocate(data)
	return it.new(ItemFn, span, PayloadID(payload))
}

// Fn returns the function data for the given item ID.
func (it *Items) Fn(id ItemID) (*ItemFnData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return it.Fns.Get(uint32(item.Payload)), true
}

// NewSyntax creates a syntax-declaration item.
func (it *Items) NewSyntax(span source.Span, data ItemSyntaxData) ItemID {
	payload := it.Syntaxes.Allocate(data)
	return it.new(ItemSyntax, span, PayloadID(payload))
}

// Syntax returns the syntax-declaration data for the given item ID.
func (it *Items) Syntax(id ItemID) (*ItemSyntaxData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemSyntax {
		return nil, false
	}
	return it.Syntaxes.Get(uint32(item.Payload)), true
}

// NewStmt wraps a lowered statement as a top-level item.
func (it *Items) NewStmt(span source.Span, stmt StmtID) ItemID {
	payload := it.Stmts.Allocate(ItemStmtData{Stmt: stmt})
	return it.new(ItemStmt, span, PayloadID(payload))
}

// Stmt returns the wrapped statement for the given item ID.
func (it *Items) Stmt(id ItemID) (*ItemStmtData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemStmt {
		return nil, false
	}
	return it.Stmts.Get(uint32(item.Payload)), true
}
