package lexer

import (
	"strings"

	"fluo/internal/token"
)

// scanString scans a double-quoted string literal.
// Text holds the decoded value; the span covers the quotes.
func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var sb strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(mark)
			lx.report(diagUnterminatedString, span, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: span, Text: sb.String()}
		}
		b := lx.cursor.Bump()
		switch b {
		case '"':
			return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(mark), Text: sb.String()}
		case '\\':
			if lx.cursor.EOF() {
				continue
			}
			esc := lx.cursor.Bump()
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				// неизвестный escape оставляем как есть
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
		default:
			sb.WriteByte(b)
		}
	}
}
