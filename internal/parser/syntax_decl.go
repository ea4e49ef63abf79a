package parser

import (
	"errors"

	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/macro"
	"fluo/internal/source"
	"fluo/internal/token"
)

// parseSyntaxItem — объявление расширения грамматики:
//
//	syntax Name "->" ("statement" | "expression") "{"
//	    parse "{" PatternElems "}"
//	    eval  "{" Directives "}"
//	"}"
//
// Registration happens here, after the closing brace, so the rule is
// usable by everything parsed strictly after the declaration and by
// nothing before it.
func (p *Parser) parseSyntaxItem() (ast.ItemID, bool) {
	syntaxTok := p.advance() // 'syntax'

	nameTok := p.lx.Peek()
	if nameTok.Kind != token.Ident && !nameTok.IsKeyword() {
		p.err(diag.SynExpectIdentifier, "expected syntax rule name")
		return ast.NoItemID, false
	}
	p.advance()

	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken,
		"expected '->' after syntax rule name"); !ok {
		return ast.NoItemID, false
	}

	category, ok := p.parseSyntaxCategory()
	if !ok {
		return ast.NoItemID, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace,
		"expected '{' to open the syntax declaration"); !ok {
		return ast.NoItemID, false
	}

	if !p.atContextual("parse") {
		p.err(diag.SynExpectClause, "expected 'parse' clause")
		return ast.NoItemID, false
	}
	p.advance()
	pattern, ok := p.parsePatternClause()
	if !ok {
		return ast.NoItemID, false
	}

	if !p.atContextual("eval") {
		p.err(diag.SynExpectClause, "expected 'eval' clause after 'parse'")
		return ast.NoItemID, false
	}
	p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace,
		"expected '{' after 'eval'"); !ok {
		return ast.NoItemID, false
	}
	program, ok := p.parseEvalDirectives(category)
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace,
		"expected '}' to close the eval clause"); !ok {
		return ast.NoItemID, false
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace,
		"expected '}' to close the syntax declaration")
	if !ok {
		return ast.NoItemID, false
	}

	declSpan := syntaxTok.Span.Cover(closeTok.Span)
	rule := &macro.Rule{
		Name:     nameTok.Text,
		NameID:   p.arenas.StringsInterner.Intern(nameTok.Text),
		Category: category,
		Pattern:  pattern,
		Program:  program,
		DeclSpan: declSpan,
	}
	if err := p.registry.Register(rule); err != nil {
		code := diag.MacDuplicateRule
		if errors.Is(err, macro.ErrReservedName) {
			code = diag.MacReservedName
		}
		p.report(code, nameTok.Span, err.Error())
		return ast.NoItemID, false
	}

	return p.arenas.Items.NewSyntax(declSpan, ast.ItemSyntaxData{
		Name:     rule.NameID,
		Category: category,
	}), true
}

func (p *Parser) parseSyntaxCategory() (ast.SyntaxCategory, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.Ident {
		switch tok.Text {
		case "statement":
			p.advance()
			return ast.SyntaxStatement, true
		case "expression":
			p.advance()
			return ast.SyntaxExpression, true
		}
	}
	p.err(diag.SynExpectCategory,
		"expected 'statement' or 'expression', got '"+tok.Text+"'")
	return ast.SyntaxStatement, false
}

// parsePatternClause читает parse { ... } как сырой список токенов.
// $name — слот захвата (по умолчанию выражение, $name:ident — один
// идентификатор); всё остальное — литеральные токены, которые
// вызов должен повторить дословно.
func (p *Parser) parsePatternClause() ([]macro.PatternElem, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynUnclosedBrace,
		"expected '{' after 'parse'")
	if !ok {
		return nil, false
	}

	var pattern []macro.PatternElem
	seen := map[source.StringID]struct{}{}

	for !p.at(token.RBrace) {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			p.report(diag.SynUnclosedBrace, openTok.Span, "parse clause is never closed")
			return nil, false
		case token.SlotRef:
			p.advance()
			elem, ok := p.parseCaptureElem(tok)
			if !ok {
				return nil, false
			}
			if _, dup := seen[elem.Name]; dup {
				p.report(diag.SynDuplicateSlot, tok.Span,
					"capture slot '$"+tok.Text+"' is declared twice")
				return nil, false
			}
			seen[elem.Name] = struct{}{}
			pattern = append(pattern, elem)
		case token.Invalid:
			return nil, false
		default:
			p.advance()
			pattern = append(pattern, macro.PatternElem{
				Kind: macro.PatLiteral,
				Span: tok.Span,
				Tok:  tok.Kind,
				Text: tok.Text,
			})
		}
	}
	p.advance() // '}'

	if len(pattern) == 0 {
		p.report(diag.SynEmptyPattern, openTok.Span,
			"parse pattern must contain at least one element")
		return nil, false
	}
	return pattern, true
}

// parseCaptureElem обрабатывает необязательную аннотацию $name:expr / $name:ident.
func (p *Parser) parseCaptureElem(slotTok token.Token) (macro.PatternElem, bool) {
	elem := macro.PatternElem{
		Kind:    macro.PatCapture,
		Span:    slotTok.Span,
		Name:    p.arenas.StringsInterner.Intern(slotTok.Text),
		Capture: macro.CaptureExpr,
	}
	if !p.at(token.Colon) {
		return elem, true
	}
	p.advance()
	kindTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken,
		"expected 'expr' or 'ident' after ':'")
	if !ok {
		return macro.PatternElem{}, false
	}
	switch kindTok.Text {
	case "expr":
		elem.Capture = macro.CaptureExpr
	case "ident":
		elem.Capture = macro.CaptureIdent
	default:
		p.report(diag.SynUnexpectedToken, kindTok.Span,
			"unknown capture kind '"+kindTok.Text+"'")
		return macro.PatternElem{}, false
	}
	elem.Span = slotTok.Span.Cover(kindTok.Span)
	return elem, true
}

// parseEvalDirectives читает директивы до закрывающей '}' (не съедая её).
func (p *Parser) parseEvalDirectives(category ast.SyntaxCategory) ([]macro.Instr, bool) {
	var out []macro.Instr
	for !p.at(token.RBrace) {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.err(diag.SynUnclosedBrace, "eval clause is never closed")
			return nil, false
		case tok.Kind == token.KwIf:
			instr, ok := p.parseBranchDirective(category)
			if !ok {
				return nil, false
			}
			out = append(out, instr)
		case tok.Kind == token.Backtick:
			instr, ok := p.parseEmitDirective(category)
			if !ok {
				return nil, false
			}
			out = append(out, instr)
		case tok.Kind == token.Ident && tok.Text == "comp":
			instr, ok := p.parseRaiseDirective()
			if !ok {
				return nil, false
			}
			out = append(out, instr)
		default:
			p.report(diag.SynExpectDirective, tok.Span,
				"expected 'if', a `code template` or 'comp::raise', got '"+tok.Text+"'")
			return nil, false
		}
	}
	return out, true
}

// parseBranchDirective: if $slot is Type { ... } [else if ... | else { ... }].
func (p *Parser) parseBranchDirective(category ast.SyntaxCategory) (macro.Instr, bool) {
	ifTok := p.advance() // 'if'

	slotTok := p.lx.Peek()
	if slotTok.Kind != token.SlotRef {
		p.err(diag.SynExpectDirective, "expected capture slot after 'if'")
		return macro.Instr{}, false
	}
	p.advance()

	if _, ok := p.expect(token.KwIs, diag.SynUnexpectedToken,
		"expected 'is' after capture slot"); !ok {
		return macro.Instr{}, false
	}

	typeID, ok := p.parseTypeExpr()
	if !ok {
		return macro.Instr{}, false
	}

	then, ok := p.parseDirectiveArm(category)
	if !ok {
		return macro.Instr{}, false
	}

	instr := macro.Instr{
		Op:   macro.OpBranch,
		Span: ifTok.Span.Cover(p.lastSpan),
		Slot: p.arenas.StringsInterner.Intern(slotTok.Text),
		Type: typeID,
		Then: then,
	}

	if p.at(token.KwElse) {
		p.advance()
		instr.HasElse = true
		if p.at(token.KwIf) {
			nested, ok := p.parseBranchDirective(category)
			if !ok {
				return macro.Instr{}, false
			}
			instr.Else = []macro.Instr{nested}
		} else {
			elseArm, ok := p.parseDirectiveArm(category)
			if !ok {
				return macro.Instr{}, false
			}
			instr.Else = elseArm
		}
		instr.Span = instr.Span.Cover(p.lastSpan)
	}
	return instr, true
}

// parseDirectiveArm: "{" Directives "}".
func (p *Parser) parseDirectiveArm(category ast.SyntaxCategory) ([]macro.Instr, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace,
		"expected '{' to open a branch arm"); !ok {
		return nil, false
	}
	arm, ok := p.parseEvalDirectives(category)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace,
		"expected '}' to close the branch arm"); !ok {
		return nil, false
	}
	return arm, true
}

// parseEmitDirective разбирает шаблон между backtick'ами один раз,
// здесь, на месте объявления. Слоты остаются дырками ExprSlot и
// заполняются клонированием при каждом вызове.
func (p *Parser) parseEmitDirective(category ast.SyntaxCategory) (macro.Instr, bool) {
	openTok := p.advance() // '`'

	p.slotDepth++
	var stmtID ast.StmtID
	var exprID ast.ExprID
	var ok bool
	if category == ast.SyntaxStatement {
		stmtID, ok = p.parseStmt()
	} else {
		exprID, ok = p.parseExpr()
	}
	p.slotDepth--
	if !ok {
		return macro.Instr{}, false
	}

	closeTok, ok := p.expect(token.Backtick, diag.SynUnclosedTemplate,
		"expected '`' to close the code template")
	if !ok {
		return macro.Instr{}, false
	}

	return macro.Instr{
		Op:   macro.OpEmit,
		Span: openTok.Span.Cover(closeTok.Span),
		Stmt: stmtID,
		Expr: exprID,
	}, true
}

// parseRaiseDirective: comp::raise("lit" + $slot.type + ...);
func (p *Parser) parseRaiseDirective() (macro.Instr, bool) {
	compTok := p.advance() // 'comp'
	if _, ok := p.expect(token.ColonColon, diag.SynExpectDirective,
		"expected '::' after 'comp'"); !ok {
		return macro.Instr{}, false
	}
	verbTok, ok := p.expect(token.Ident, diag.SynExpectDirective,
		"expected 'raise' after 'comp::'")
	if !ok {
		return macro.Instr{}, false
	}
	if verbTok.Text != "raise" {
		p.report(diag.SynExpectDirective, verbTok.Span,
			"unknown compiler directive 'comp::"+verbTok.Text+"'")
		return macro.Instr{}, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen,
		"expected '(' after 'comp::raise'"); !ok {
		return macro.Instr{}, false
	}

	var parts []macro.MsgPart
	for {
		part, ok := p.parseRaisePart()
		if !ok {
			return macro.Instr{}, false
		}
		parts = append(parts, part)
		if !p.at(token.Plus) {
			break
		}
		p.advance()
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' after the raise message"); !ok {
		return macro.Instr{}, false
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after 'comp::raise(...)'")
	if !ok {
		return macro.Instr{}, false
	}

	return macro.Instr{
		Op:    macro.OpRaise,
		Span:  compTok.Span.Cover(semiTok.Span),
		Parts: parts,
	}, true
}

// parseRaisePart — строковый литерал или $slot.type.
func (p *Parser) parseRaisePart() (macro.MsgPart, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.StringLit:
		p.advance()
		return macro.MsgPart{Lit: tok.Text}, true
	case token.SlotRef:
		p.advance()
		if _, ok := p.expect(token.Dot, diag.SynUnexpectedToken,
			"expected '.type' after capture slot in raise message"); !ok {
			return macro.MsgPart{}, false
		}
		fieldTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken,
			"expected 'type' after '.'")
		if !ok {
			return macro.MsgPart{}, false
		}
		if fieldTok.Text != "type" {
			p.report(diag.SynUnexpectedToken, fieldTok.Span,
				"unknown slot property '"+fieldTok.Text+"'")
			return macro.MsgPart{}, false
		}
		return macro.MsgPart{
			Slot:     p.arenas.StringsInterner.Intern(tok.Text),
			SlotType: true,
		}, true
	default:
		p.report(diag.SynUnexpectedToken, tok.Span,
			"raise message parts are string literals or '$slot.type'")
		return macro.MsgPart{}, false
	}
}
