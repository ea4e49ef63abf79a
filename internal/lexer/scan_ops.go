package lexer

import (
	"fmt"

	"fluo/internal/diag"
	"fluo/internal/token"
)

// Коды даём через алиасы, чтобы сканеры не тянули diag в сигнатуры.
const (
	diagUnknownChar        = diag.LexUnknownChar
	diagUnterminatedString = diag.LexUnterminatedString
	diagBadNumber          = diag.LexBadNumber
	diagBadSlotRef         = diag.LexBadSlotRef
)

// scanOperatorOrPunct scans single and double character operators.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	mark := lx.cursor.Mark()
	b := lx.cursor.Bump()

	mk := func(kind token.Kind) token.Token {
		span := lx.cursor.SpanFrom(mark)
		return token.Token{Kind: kind, Span: span, Text: lx.cursor.File.Text(span)}
	}

	switch b {
	case '+':
		return mk(token.Plus)
	case '-':
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			return mk(token.Arrow)
		}
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '=':
		return mk(token.Assign)
	case ':':
		if lx.cursor.Peek() == ':' {
			lx.cursor.Bump()
			return mk(token.ColonColon)
		}
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '.':
		return mk(token.Dot)
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '`':
		return mk(token.Backtick)
	default:
		tok := mk(token.Invalid)
		lx.report(diagUnknownChar, tok.Span, fmt.Sprintf("unknown character %q", rune(b)))
		return tok
	}
}
