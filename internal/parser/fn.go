package parser

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/token"
)

// parseFnItem — объявление функции:
//
//	fn path "(" [param {"," param}] ")" ["->" TypeExpr] Block
//	param = ident ":" TypeExpr
func (p *Parser) parseFnItem() (ast.ItemID, bool) {
	fnTok := p.advance() // 'fn'

	path, _, ok := p.parsePath()
	if !ok {
		return ast.NoItemID, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen,
		"expected '(' after function name"); !ok {
		return ast.NoItemID, false
	}

	var params []ast.FnParam
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseFnParam()
			if !ok {
				return ast.NoItemID, false
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after function parameters"); !ok {
		return ast.NoItemID, false
	}

	ret := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		retID, ok := p.parseTypeExpr()
		if !ok {
			return ast.NoItemID, false
		}
		ret = retID
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}

	span := fnTok.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Items.NewFn(span, ast.ItemFnData{
		Path:   path,
		Params: params,
		Ret:    ret,
		Body:   body,
	}), true
}

func (p *Parser) parseFnParam() (ast.FnParam, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected parameter name")
	if !ok {
		return ast.FnParam{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' after parameter name"); !ok {
		return ast.FnParam{}, false
	}
	typeID, ok := p.parseTypeExpr()
	if !ok {
		return ast.FnParam{}, false
	}
	return ast.FnParam{
		Name: p.arenas.StringsInterner.Intern(nameTok.Text),
		Type: typeID,
		Span: nameTok.Span.Cover(p.arenas.Types.Get(typeID).Span),
	}, true
}
