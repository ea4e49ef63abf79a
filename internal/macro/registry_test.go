package macro

import (
	"errors"
	"testing"

	"fluo/internal/ast"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	rule := &Rule{Name: "print", Category: ast.SyntaxStatement}
	if err := reg.Register(rule); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := reg.Lookup("print")
	if !ok || got != rule {
		t.Fatal("Lookup must return the registered rule")
	}
	if _, ok := reg.Lookup("absent"); ok {
		t.Fatal("Lookup must miss unknown names")
	}
}

func TestLookupCategoryFilters(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&Rule{Name: "print", Category: ast.SyntaxStatement}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, ok := reg.LookupCategory("print", ast.SyntaxStatement); !ok {
		t.Error("statement rule must be visible in statement position")
	}
	if _, ok := reg.LookupCategory("print", ast.SyntaxExpression); ok {
		t.Error("statement rule must be invisible in expression position")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&Rule{Name: "print", Category: ast.SyntaxStatement}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := reg.Register(&Rule{Name: "print", Category: ast.SyntaxExpression})
	if !errors.Is(err, ErrDuplicateRule) {
		t.Fatalf("err = %v, want ErrDuplicateRule", err)
	}
}

func TestReservedName(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(&Rule{Name: "let", Category: ast.SyntaxStatement})
	if !errors.Is(err, ErrReservedName) {
		t.Fatalf("err = %v, want ErrReservedName", err)
	}

	reg.AllowKeywordNames = true
	if err := reg.Register(&Rule{Name: "let", Category: ast.SyntaxStatement}); err != nil {
		t.Fatalf("AllowKeywordNames must disable the reserved check: %v", err)
	}
}

func TestNamesPreserveOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := reg.Register(&Rule{Name: name, Category: ast.SyntaxStatement}); err != nil {
			t.Fatalf("Register %q: %v", name, err)
		}
	}
	got := reg.Names()
	want := []string{"zeta", "alpha", "mid"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d", reg.Len())
	}
}
