package macro

import (
	"strings"

	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/source"
	"fluo/internal/types"
)

// Evaluator executes a rule's eval program against the bindings of one
// invocation. Everything here runs at compile time: type dispatch looks
// at the static type of the bound fragment, never at a runtime value.
type Evaluator struct {
	Builder  *ast.Builder
	Types    *types.Interner
	Reporter diag.Reporter
}

// Result is the outcome of one invocation: a lowered statement or
// expression (per rule category), or Ok=false after a fatal diagnostic.
type Result struct {
	Stmt ast.StmtID
	Expr ast.ExprID
	Ok   bool
}

// Eval runs the program. The lowered fragment replaces the invocation
// in the AST; a raise aborts the unit instead.
func (ev *Evaluator) Eval(rule *Rule, bindings *Bindings, invokeSpan source.Span) Result {
	out, ok := ev.run(rule, rule.Program, bindings, invokeSpan)
	if !ok {
		return Result{}
	}
	if !out.Stmt.IsValid() && !out.Expr.IsValid() {
		ev.report(diag.MacNoOutput, invokeSpan,
			"eval of '"+rule.Name+"' produced no lowering and no diagnostic")
		return Result{}
	}
	return out
}

// run executes a directive list until something emits or raises.
func (ev *Evaluator) run(rule *Rule, instrs []Instr, bindings *Bindings, invokeSpan source.Span) (Result, bool) {
	for i := range instrs {
		in := &instrs[i]
		switch in.Op {
		case OpBranch:
			res, done, ok := ev.branch(rule, in, bindings, invokeSpan)
			if !ok {
				return Result{}, false
			}
			if done {
				return res, true
			}
		case OpEmit:
			return ev.emit(rule, in, bindings)
		case OpRaise:
			ev.raise(in, bindings, invokeSpan)
			return Result{}, false
		}
	}
	return Result{Ok: true}, true
}

// branch evaluates one if/else-if/else chain. done reports whether a
// taken arm produced output.
func (ev *Evaluator) branch(rule *Rule, in *Instr, bindings *Bindings, invokeSpan source.Span) (Result, bool, bool) {
	bound, ok := bindings.Get(in.Slot)
	if !ok {
		name := ev.Builder.StringsInterner.MustLookup(in.Slot)
		ev.report(diag.MacUnboundSlot, in.Span,
			"capture slot '$"+name+"' referenced in eval but never bound")
		return Result{}, false, false
	}

	actual := ev.Types.TypeOf(ev.Builder, bound)
	want := ev.Types.Resolve(ev.Builder, in.Type)

	if actual == want {
		res, ok := ev.run(rule, in.Then, bindings, invokeSpan)
		return res, true, ok
	}
	if in.HasElse {
		res, ok := ev.run(rule, in.Else, bindings, invokeSpan)
		return res, true, ok
	}

	name := ev.Builder.StringsInterner.MustLookup(in.Slot)
	ev.report(diag.MacNoMatchingBranch, invokeSpan,
		"no eval branch matches '$"+name+"' of type "+ev.Types.Format(actual))
	return Result{}, false, false
}

func (ev *Evaluator) emit(rule *Rule, in *Instr, bindings *Bindings) (Result, bool) {
	sub := substitution{b: ev.Builder, bindings: bindings}

	var res Result
	if rule.Category == ast.SyntaxStatement {
		res = Result{Stmt: sub.stmt(in.Stmt), Ok: true}
	} else {
		res = Result{Expr: sub.expr(in.Expr), Ok: true}
	}
	if sub.missing != source.NoStringID {
		name := ev.Builder.StringsInterner.MustLookup(sub.missing)
		ev.report(diag.MacUnboundSlot, in.Span,
			"template references unbound slot '$"+name+"'")
		return Result{}, false
	}
	return res, true
}

// raise renders the comp::raise message, interpolating $slot.type parts,
// and reports it verbatim as a fatal user diagnostic.
func (ev *Evaluator) raise(in *Instr, bindings *Bindings, invokeSpan source.Span) {
	var sb strings.Builder
	for _, part := range in.Parts {
		if !part.SlotType {
			sb.WriteString(part.Lit)
			continue
		}
		bound, ok := bindings.Get(part.Slot)
		if !ok {
			name := ev.Builder.StringsInterner.MustLookup(part.Slot)
			ev.report(diag.MacUnboundSlot, in.Span,
				"capture slot '$"+name+"' referenced in eval but never bound")
			return
		}
		sb.WriteString(ev.Types.Format(ev.Types.TypeOf(ev.Builder, bound)))
	}
	ev.report(diag.MacUserRaise, invokeSpan, sb.String())
}

func (ev *Evaluator) report(code diag.Code, sp source.Span, msg string) {
	if ev.Reporter != nil {
		ev.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
