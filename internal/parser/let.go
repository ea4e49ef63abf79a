package parser

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/source"
	"fluo/internal/token"
)

// parseLetItem — top-level объявление: [pub] [extern] let path: Type [= expr];
func (p *Parser) parseLetItem() (ast.ItemID, bool) {
	decl, span, ok := p.parseLetDecl()
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewLet(span, decl), true
}

// parseLetDecl разбирает модификаторы и само объявление.
// Порядок модификаторов фиксирован: pub строго перед extern.
func (p *Parser) parseLetDecl() (ast.LetDecl, source.Span, bool) {
	var decl ast.LetDecl
	startSpan := p.lx.Peek().Span

	if p.at(token.KwPub) {
		p.advance()
		decl.Mods |= ast.LetPub
	}
	if p.at(token.KwExtern) {
		p.advance()
		decl.Mods |= ast.LetExtern
	}
	if p.at(token.KwPub) {
		// extern pub — запрещённый порядок
		p.report(diag.SynModifierOrder, p.lx.Peek().Span,
			"'pub' must come before 'extern'")
		return ast.LetDecl{}, source.Span{}, false
	}

	if _, ok := p.expect(token.KwLet, diag.SynUnexpectedToken, "expected 'let'"); !ok {
		return ast.LetDecl{}, source.Span{}, false
	}

	path, _, ok := p.parsePath()
	if !ok {
		return ast.LetDecl{}, source.Span{}, false
	}
	decl.Path = path

	if _, ok := p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' before the declared type"); !ok {
		return ast.LetDecl{}, source.Span{}, false
	}

	typeID, ok := p.parseTypeExpr()
	if !ok {
		return ast.LetDecl{}, source.Span{}, false
	}
	decl.Type = typeID
	decl.Value = ast.NoExprID

	if p.at(token.Assign) {
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return ast.LetDecl{}, source.Span{}, false
		}
		decl.Value = value
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after let declaration")
	if !ok {
		return ast.LetDecl{}, source.Span{}, false
	}

	return decl, startSpan.Cover(semiTok.Span), true
}
