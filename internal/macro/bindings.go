package macro

import (
	"fluo/internal/ast"
	"fluo/internal/source"
)

// Bindings maps capture-slot names to the fragments they matched.
// Created fresh per invocation and discarded after lowering or raising.
type Bindings struct {
	slots map[source.StringID]ast.ExprID
	order []source.StringID
}

func NewBindings() *Bindings {
	return &Bindings{
		slots: make(map[source.StringID]ast.ExprID, 4),
	}
}

// Bind records a slot match. A slot is bound exactly once per
// invocation; the pattern compiler rejects duplicate slot names, so a
// second bind indicates a parser bug and reports false.
func (b *Bindings) Bind(name source.StringID, expr ast.ExprID) bool {
	if _, ok := b.slots[name]; ok {
		return false
	}
	b.slots[name] = expr
	b.order = append(b.order, name)
	return true
}

// Get returns the fragment bound under name.
func (b *Bindings) Get(name source.StringID) (ast.ExprID, bool) {
	expr, ok := b.slots[name]
	return expr, ok
}

func (b *Bindings) Len() int {
	return len(b.slots)
}
