package parser

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
// Возвращает ExprID и флаг успеха.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr реализует precedence climbing для бинарных операторов.
// minPrec - минимальный приоритет для текущего уровня.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()

		prec := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		opTok := p.advance()

		// левая ассоциативность: правая часть со строго большим приоритетом
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after binary operator")
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		left = p.arenas.Exprs.NewBinary(leftSpan.Cover(rightSpan), op, left, right)
	}

	return left, true
}

// parseUnaryExpr обрабатывает унарный минус.
// Минус связывает сильнее бинарных операторов: -2 * 3 == (-2) * 3.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	if p.at(token.Minus) {
		minusTok := p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after unary '-'")
			return ast.NoExprID, false
		}
		span := minusTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewUnary(span, ast.ExprUnaryMinus, operand), true
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary followed by call argument lists.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for p.at(token.LParen) {
		expr, ok = p.parseCallArgs(expr)
		if !ok {
			return ast.NoExprID, false
		}
	}
	return expr, true
}

func (p *Parser) parseCallArgs(callee ast.ExprID) (ast.ExprID, bool) {
	openTok := p.advance() // '('

	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		return ast.NoExprID, false
	}

	span := p.arenas.Exprs.Get(callee).Span.Cover(openTok.Span).Cover(closeTok.Span)
	return p.arenas.Exprs.NewCall(span, callee, args), true
}

// parsePrimaryExpr парсит литералы, идентификаторы, скобки и слоты.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		t := p.advance()
		return p.arenas.Exprs.NewLiteral(t.Span, ast.ExprLitInt,
			p.arenas.StringsInterner.Intern(t.Text)), true
	case token.FloatLit:
		t := p.advance()
		return p.arenas.Exprs.NewLiteral(t.Span, ast.ExprLitFloat,
			p.arenas.StringsInterner.Intern(t.Text)), true
	case token.StringLit:
		t := p.advance()
		return p.arenas.Exprs.NewLiteral(t.Span, ast.ExprLitString,
			p.arenas.StringsInterner.Intern(t.Text)), true
	case token.KwTrue:
		t := p.advance()
		return p.arenas.Exprs.NewLiteral(t.Span, ast.ExprLitTrue,
			p.arenas.StringsInterner.Intern(t.Text)), true
	case token.KwFalse:
		t := p.advance()
		return p.arenas.Exprs.NewLiteral(t.Span, ast.ExprLitFalse,
			p.arenas.StringsInterner.Intern(t.Text)), true
	case token.SlotRef:
		if p.slotDepth == 0 {
			p.report(diag.SynSlotOutsideMacro, tok.Span,
				"'$"+tok.Text+"' is only valid inside a syntax declaration")
			return ast.NoExprID, false
		}
		t := p.advance()
		return p.arenas.Exprs.NewSlot(t.Span,
			p.arenas.StringsInterner.Intern(t.Text)), true
	case token.Ident:
		// expression-category extension dispatch happens before the
		// base grammar sees the identifier
		if rule, ok := p.registry.LookupCategory(tok.Text, ast.SyntaxExpression); ok {
			return p.invokeExprExtension(rule)
		}
		path, span, ok := p.parsePath()
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewIdent(span, path), true
	case token.LParen:
		return p.parseParenExpr()
	default:
		p.err(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
		return ast.NoExprID, false
	}
}

// parseParenExpr парсит выражения в скобках - может быть группировкой
// или tuple. Ровно один элемент без запятой — группировка; ноль, два и
// больше, или один с висящей запятой — tuple.
func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	openTok := p.advance() // '('

	// пустой tuple
	if p.at(token.RParen) {
		closeTok := p.advance()
		return p.arenas.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), nil, false), true
	}

	first, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if p.at(token.Comma) {
		elems := []ast.ExprID{first}
		trailing := false
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.RParen) {
				trailing = true
				break
			}
			expr, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			elems = append(elems, expr)
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after tuple elements")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), elems, trailing), true
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewGroup(openTok.Span.Cover(closeTok.Span), first), true
}
