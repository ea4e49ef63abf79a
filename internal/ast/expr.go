package ast

import (
	"fluo/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprUnary
	ExprBinary
	ExprTuple
	ExprGroup
	ExprCall
	// ExprSlot is a capture-slot hole inside a macro template ($value).
	// It never survives lowering: substitution replaces it with the
	// bound fragment before the AST leaves the parser.
	ExprSlot
)

type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitString
	ExprLitTrue
	ExprLitFalse
)

type ExprUnaryOp uint8

const (
	ExprUnaryMinus ExprUnaryOp = iota
)

type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod
)

func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	}
	return "?"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type (
	// ExprIdentData is an identifier or namespace path (a::b::c).
	ExprIdentData struct {
		Path []source.StringID
	}
	ExprLiteralData struct {
		Kind  ExprLitKind
		Value source.StringID // raw lexeme (decoded value for strings)
	}
	ExprUnaryData struct {
		Op      ExprUnaryOp
		Operand ExprID
	}
	ExprBinaryData struct {
		Op    ExprBinaryOp
		Left  ExprID
		Right ExprID
	}
	ExprTupleData struct {
		Elems    []ExprID
		Trailing bool
	}
	ExprGroupData struct {
		Inner ExprID
	}
	ExprCallData struct {
		Callee ExprID
		Args   []ExprID
	}
	ExprSlotData struct {
		Name source.StringID
	}
)
