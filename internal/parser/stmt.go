package parser

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/token"
)

// parseStmt — операторы внутри блоков и statement-позиции верхнего уровня.
// Объявления syntax допустимы только на верхнем уровне, не здесь.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwLet, token.KwPub, token.KwExtern:
		decl, span, ok := p.parseLetDecl()
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewLet(span, decl), true
	case token.KwSyntax:
		p.report(diag.SynUnexpectedToken, tok.Span,
			"'syntax' declarations are only allowed at the top level")
		return ast.NoStmtID, false
	case token.LBrace:
		return p.parseBlock()
	case token.Ident:
		// statement-category extension dispatch wins over the base
		// expression grammar for a bare identifier
		if rule, ok := p.registry.LookupCategory(tok.Text, ast.SyntaxStatement); ok {
			return p.invokeStmtExtension(rule)
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseExprStmt: Expr ";".
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after expression")
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.arenas.Exprs.Get(expr).Span.Cover(semiTok.Span)
	return p.arenas.Stmts.NewExpr(span, expr), true
}

// parseBlock: "{" {Stmt} "}".
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.report(diag.SynUnclosedBrace, openTok.Span, "block is never closed")
			return ast.NoStmtID, false
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		stmts = append(stmts, stmt)
	}

	closeTok := p.advance() // '}'
	return p.arenas.Stmts.NewBlock(openTok.Span.Cover(closeTok.Span), stmts), true
}
