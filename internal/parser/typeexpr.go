package parser

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/token"
)

// parseTypeExpr — тип в аннотации: путь, tuple-тип или fn-тип.
//
//	TypeExpr = Path | "(" [TypeExpr {"," TypeExpr}] ")" | "fn" "(" ... ")" ["->" TypeExpr]
func (p *Parser) parseTypeExpr() (ast.TypeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		path, span, ok := p.parsePath()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewNamed(span, path), true
	case token.LParen:
		return p.parseTupleType()
	case token.KwFn:
		return p.parseFnType()
	default:
		p.err(diag.SynExpectType, "expected type, got '"+tok.Text+"'")
		return ast.NoTypeID, false
	}
}

// parseTupleType: "()" — unit, "(T)" и "(T, U)" — tuple-типы.
// В отличие от выражений, скобки в типовой позиции не группируют.
func (p *Parser) parseTupleType() (ast.TypeID, bool) {
	openTok := p.advance() // '('

	var elems []ast.TypeID
	if !p.at(token.RParen) {
		for {
			elem, ok := p.parseTypeExpr()
			if !ok {
				return ast.NoTypeID, false
			}
			elems = append(elems, elem)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.RParen) {
				break
			}
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' in tuple type")
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewTuple(openTok.Span.Cover(closeTok.Span), elems), true
}

// parseFnType: fn (T, U) -> R. Без "->" тип результата — unit.
func (p *Parser) parseFnType() (ast.TypeID, bool) {
	fnTok := p.advance() // 'fn'

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen,
		"expected '(' after 'fn' in type position"); !ok {
		return ast.NoTypeID, false
	}

	var params []ast.TypeID
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseTypeExpr()
			if !ok {
				return ast.NoTypeID, false
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after fn type parameters")
	if !ok {
		return ast.NoTypeID, false
	}

	ret := ast.NoTypeID
	span := fnTok.Span.Cover(closeTok.Span)
	if p.at(token.Arrow) {
		p.advance()
		retID, ok := p.parseTypeExpr()
		if !ok {
			return ast.NoTypeID, false
		}
		ret = retID
		span = span.Cover(p.arenas.Types.Get(retID).Span)
	}

	return p.arenas.Types.NewFn(span, params, ret), true
}
