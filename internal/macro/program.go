package macro

import (
	"fluo/internal/ast"
	"fluo/internal/source"
)

// Op is the closed instruction set of an eval clause. There is no
// general computation at this layer: an eval program can only branch on
// a slot's static type, emit a lowered template, or raise a diagnostic.
type Op uint8

const (
	// OpBranch dispatches on the static type of a bound slot.
	OpBranch Op = iota
	// OpEmit lowers the invocation to a pre-parsed code template.
	OpEmit
	// OpRaise reports a fatal user diagnostic (comp::raise).
	OpRaise
)

// Instr is one eval directive. Fields are populated per Op.
type Instr struct {
	Op   Op
	Span source.Span

	// OpBranch: if $Slot is Type { Then } else { Else }.
	// Else holds a nested OpBranch for else-if chains; a nil Else on a
	// failed match is a NoMatchingBranch error.
	Slot    source.StringID
	Type    ast.TypeID // annotation as written; resolved at eval time
	Then    []Instr
	Else    []Instr
	HasElse bool

	// OpEmit: exactly one of Stmt/Expr is set, per rule category.
	Stmt ast.StmtID
	Expr ast.ExprID

	// OpRaise
	Parts []MsgPart
}

// MsgPart is one +-joined piece of a comp::raise message: either a
// string literal or a slot's rendered type ($slot.type).
type MsgPart struct {
	Lit      string
	Slot     source.StringID
	SlotType bool
}
