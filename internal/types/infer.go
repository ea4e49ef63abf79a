package types

import (
	"fluo/internal/ast"
)

// TypeOf computes the static type of an expression fragment from its
// shape alone. No symbol table exists at this layer, so identifiers and
// calls are Unknown; macro `is` dispatch treats Unknown as matching
// nothing.
func (in *Interner) TypeOf(b *ast.Builder, id ast.ExprID) TypeID {
	node := b.Exprs.Get(id)
	if node == nil {
		return in.builtins.Unknown
	}
	switch node.Kind {
	case ast.ExprLit:
		lit, _ := b.Exprs.Literal(id)
		switch lit.Kind {
		case ast.ExprLitInt:
			return in.builtins.Int
		case ast.ExprLitFloat:
			return in.builtins.Float
		case ast.ExprLitString:
			return in.builtins.String
		case ast.ExprLitTrue, ast.ExprLitFalse:
			return in.builtins.Bool
		}
		return in.builtins.Unknown
	case ast.ExprGroup:
		group, _ := b.Exprs.Group(id)
		return in.TypeOf(b, group.Inner)
	case ast.ExprUnary:
		unary, _ := b.Exprs.Unary(id)
		return in.TypeOf(b, unary.Operand)
	case ast.ExprTuple:
		tuple, _ := b.Exprs.Tuple(id)
		elems := make([]TypeID, 0, len(tuple.Elems))
		for _, e := range tuple.Elems {
			elems = append(elems, in.TypeOf(b, e))
		}
		return in.Tuple(elems)
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		left := in.TypeOf(b, bin.Left)
		right := in.TypeOf(b, bin.Right)
		if left == right {
			return left
		}
		return in.builtins.Unknown
	default:
		// идентификаторы, вызовы, слоты — форма не определяет тип
		return in.builtins.Unknown
	}
}
