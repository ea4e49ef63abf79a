package macro

import (
	"testing"

	"fluo/internal/ast"
	"fluo/internal/source"
)

func TestBindings(t *testing.T) {
	b := NewBindings()
	name := source.StringID(1)
	other := source.StringID(2)

	if _, ok := b.Get(name); ok {
		t.Fatal("empty bindings must miss")
	}
	if !b.Bind(name, ast.ExprID(7)) {
		t.Fatal("first bind must succeed")
	}
	if b.Bind(name, ast.ExprID(8)) {
		t.Fatal("rebinding the same slot must fail")
	}
	if expr, ok := b.Get(name); !ok || expr != ast.ExprID(7) {
		t.Errorf("Get = %v, %v", expr, ok)
	}
	if !b.Bind(other, ast.ExprID(9)) {
		t.Fatal("distinct slot must bind")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d", b.Len())
	}
}
