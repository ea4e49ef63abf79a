package ast

import (
	"fluo/internal/source"
)

type Hints struct{ Files, Items, Stmts, Exprs, Types uint }

// Builder aggregates the arenas one compilation unit allocates into.
// The parser is its single writer; readers must not mutate nodes.
type Builder struct {
	Files           *Files
	Items           *Items
	Stmts           *Stmts
	Exprs           *Exprs
	Types           *Types
	StringsInterner *source.Interner
}

// NewBuilder constructs a Builder. A nil interner gets a fresh one.
func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Files:           NewFiles(hints.Files),
		Items:           NewItems(hints.Items),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		Types:           NewTypes(hints.Types),
		StringsInterner: interner,
	}
}

func (b *Builder) PushItem(file FileID, item ItemID) {
	b.Files.Get(file).Items = append(b.Files.Get(file).Items, item)
}

// PathText renders an interned namespace path as a::b::c.
func (b *Builder) PathText(path []source.StringID) string {
	out := ""
	for i, seg := range path {
		if i > 0 {
			out += "::"
		}
		out += b.StringsInterner.MustLookup(seg)
	}
	return out
}
