package lexer

import (
	"fluo/internal/token"
)

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// scanNumber scans decimal integer and float literals.
// Underscore separators are allowed between digits (1_000).
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	kind := token.IntLit

	lx.scanDigits()

	// дробная часть: '.' и хотя бы одна цифра
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		lx.scanDigits()
	}

	span := lx.cursor.SpanFrom(mark)
	text := lx.cursor.File.Text(span)

	// защитимся от висящего разделителя: 1_ или 1_000_
	if len(text) > 0 && text[len(text)-1] == '_' {
		lx.report(diagBadNumber, span, "numeric literal may not end with '_'")
		return token.Token{Kind: token.Invalid, Span: span, Text: text}
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}

func (lx *Lexer) scanDigits() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDec(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
				lx.cursor.Bump()
				continue
			}
			lx.cursor.Bump() // съедаем, ошибку отдаст scanNumber
		}
		return
	}
}
