package macro

import (
	"fluo/internal/ast"
	"fluo/internal/source"
)

// substitution clones a template tree, replacing every ExprSlot hole
// with the fragment bound under its name. Nodes are immutable after
// construction, so lowering always allocates fresh nodes instead of
// patching the template in place.
type substitution struct {
	b        *ast.Builder
	bindings *Bindings
	missing  source.StringID // first unbound slot, NoStringID if none
}

func (s *substitution) expr(id ast.ExprID) ast.ExprID {
	node := s.b.Exprs.Get(id)
	if node == nil {
		return ast.NoExprID
	}
	switch node.Kind {
	case ast.ExprSlot:
		slot, _ := s.b.Exprs.Slot(id)
		bound, ok := s.bindings.Get(slot.Name)
		if !ok {
			if s.missing == source.NoStringID {
				s.missing = slot.Name
			}
			return ast.NoExprID
		}
		return bound
	case ast.ExprIdent:
		ident, _ := s.b.Exprs.Ident(id)
		return s.b.Exprs.NewIdent(node.Span, ident.Path)
	case ast.ExprLit:
		lit, _ := s.b.Exprs.Literal(id)
		return s.b.Exprs.NewLiteral(node.Span, lit.Kind, lit.Value)
	case ast.ExprUnary:
		unary, _ := s.b.Exprs.Unary(id)
		return s.b.Exprs.NewUnary(node.Span, unary.Op, s.expr(unary.Operand))
	case ast.ExprBinary:
		bin, _ := s.b.Exprs.Binary(id)
		return s.b.Exprs.NewBinary(node.Span, bin.Op, s.expr(bin.Left), s.expr(bin.Right))
	case ast.ExprTuple:
		tuple, _ := s.b.Exprs.Tuple(id)
		elems := make([]ast.ExprID, 0, len(tuple.Elems))
		for _, e := range tuple.Elems {
			elems = append(elems, s.expr(e))
		}
		return s.b.Exprs.NewTuple(node.Span, elems, tuple.Trailing)
	case ast.ExprGroup:
		group, _ := s.b.Exprs.Group(id)
		return s.b.Exprs.NewGroup(node.Span, s.expr(group.Inner))
	case ast.ExprCall:
		call, _ := s.b.Exprs.Call(id)
		args := make([]ast.ExprID, 0, len(call.Args))
		for _, a := range call.Args {
			args = append(args, s.expr(a))
		}
		return s.b.Exprs.NewCall(node.Span, s.expr(call.Callee), args)
	default:
		return ast.NoExprID
	}
}

func (s *substitution) stmt(id ast.StmtID) ast.StmtID {
	node := s.b.Stmts.Get(id)
	if node == nil {
		return ast.NoStmtID
	}
	switch node.Kind {
	case ast.StmtExpr:
		data, _ := s.b.Stmts.Expr(id)
		return s.b.Stmts.NewExpr(node.Span, s.expr(data.Expr))
	case ast.StmtLet:
		data, _ := s.b.Stmts.Let(id)
		decl := data.Decl
		if decl.Value.IsValid() {
			decl.Value = s.expr(decl.Value)
		}
		return s.b.Stmts.NewLet(node.Span, decl)
	case ast.StmtBlock:
		data, _ := s.b.Stmts.Block(id)
		stmts := make([]ast.StmtID, 0, len(data.Stmts))
		for _, st := range data.Stmts {
			stmts = append(stmts, s.stmt(st))
		}
		return s.b.Stmts.NewBlock(node.Span, stmts)
	default:
		return ast.NoStmtID
	}
}
