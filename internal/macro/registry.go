package macro

import (
	"errors"
	"fmt"

	"fluo/internal/ast"
	"fluo/internal/token"
)

var (
	// ErrDuplicateRule is returned when a rule name is already taken.
	ErrDuplicateRule = errors.New("duplicate syntax rule")
	// ErrReservedName is returned when a rule name shadows a keyword.
	ErrReservedName = errors.New("syntax rule name is reserved")
)

// Registry maps extension names to their registered rules.
//
// The registry is single-writer: the core parser registers rules
// sequentially as syntax declarations complete, and a registration is
// visible to all parsing performed strictly after it. No concurrent
// access happens within one compilation unit.
type Registry struct {
	rules map[string]*Rule
	order []string

	// AllowKeywordNames lets rule names collide with reserved words.
	// Lookup still loses to the fixed grammar; the knob only disables
	// the registration-time error.
	AllowKeywordNames bool
}

// NewRegistry creates an empty registry. Built-in productions are part
// of the core parser itself, not entries here.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]*Rule, 8),
	}
}

// Register adds a rule. Re-declaring a name fails with ErrDuplicateRule
// whether or not the first rule was ever used.
func (reg *Registry) Register(rule *Rule) error {
	if !reg.AllowKeywordNames && token.IsKeywordName(rule.Name) {
		return fmt.Errorf("%w: %q", ErrReservedName, rule.Name)
	}
	if _, ok := reg.rules[rule.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, rule.Name)
	}
	reg.rules[rule.Name] = rule
	reg.order = append(reg.order, rule.Name)
	return nil
}

// Lookup is a pure query; it never mutates the registry.
func (reg *Registry) Lookup(name string) (*Rule, bool) {
	r, ok := reg.rules[name]
	return r, ok
}

// LookupCategory returns the rule only when its category matches the
// position the parser is currently in.
func (reg *Registry) LookupCategory(name string, cat ast.SyntaxCategory) (*Rule, bool) {
	r, ok := reg.rules[name]
	if !ok || r.Category != cat {
		return nil, false
	}
	return r, true
}

func (reg *Registry) Len() int {
	return len(reg.rules)
}

// Names returns rule names in registration order.
func (reg *Registry) Names() []string {
	return append([]string(nil), reg.order...)
}
