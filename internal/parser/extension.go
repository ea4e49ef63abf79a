package parser

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/macro"
	"fluo/internal/source"
	"fluo/internal/token"
)

// Диспетчеризация вызова зарегистрированного расширения: матчим паттерн,
// связываем слоты, исполняем eval-программу и подставляем результат на
// место вызова. Никакого узла "вызов расширения" в итоговом AST нет.

func (p *Parser) invokeStmtExtension(rule *macro.Rule) (ast.StmtID, bool) {
	bindings, span, ok := p.matchPattern(rule)
	if !ok {
		return ast.NoStmtID, false
	}
	res := p.eval.Eval(rule, bindings, span)
	if !res.Ok {
		p.failed = true
		return ast.NoStmtID, false
	}
	return res.Stmt, true
}

func (p *Parser) invokeExprExtension(rule *macro.Rule) (ast.ExprID, bool) {
	bindings, span, ok := p.matchPattern(rule)
	if !ok {
		return ast.NoExprID, false
	}
	res := p.eval.Eval(rule, bindings, span)
	if !res.Ok {
		p.failed = true
		return ast.NoExprID, false
	}
	return res.Expr, true
}

// matchPattern поэлементно сверяет вход с зарегистрированным паттерном.
// Литералы должны совпасть дословно, слоты парсят подконструкцию своей
// категории и связываются ровно один раз.
func (p *Parser) matchPattern(rule *macro.Rule) (*macro.Bindings, source.Span, bool) {
	bindings := macro.NewBindings()
	startSpan := p.lx.Peek().Span

	for i := range rule.Pattern {
		elem := &rule.Pattern[i]
		switch elem.Kind {
		case macro.PatLiteral:
			tok := p.lx.Peek()
			if tok.Kind != elem.Tok || (elem.Tok == token.Ident && tok.Text != elem.Text) {
				p.report(diag.SynUnexpectedToken, tok.Span,
					"expected '"+p.patternElemText(elem)+"' in '"+rule.Name+"' invocation, got '"+tok.Text+"'")
				return nil, source.Span{}, false
			}
			p.advance()
		case macro.PatCapture:
			expr, ok := p.captureFragment(elem)
			if !ok {
				return nil, source.Span{}, false
			}
			bindings.Bind(elem.Name, expr)
		}
	}

	return bindings, startSpan.Cover(p.lastSpan), true
}

func (p *Parser) captureFragment(elem *macro.PatternElem) (ast.ExprID, bool) {
	if elem.Capture == macro.CaptureIdent {
		tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected identifier for capture slot")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewIdent(tok.Span,
			[]source.StringID{p.arenas.StringsInterner.Intern(tok.Text)}), true
	}
	return p.parseExpr()
}

func (p *Parser) patternElemText(elem *macro.PatternElem) string {
	if elem.Tok == token.Ident {
		return elem.Text
	}
	return elem.Tok.String()
}
