package parser

import (
	"fluo/internal/ast"
	"fluo/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет.
const (
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * / %
)

// getBinaryOperatorPrec возвращает приоритет оператора.
// Все бинарные операторы левоассоциативны.
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) int {
	switch kind {
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	default:
		return -1 // не бинарный оператор
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора.
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Percent:
		return ast.ExprBinaryMod
	default:
		// Не должно случаться, если таблица приоритетов корректна.
		return ast.ExprBinaryAdd
	}
}
