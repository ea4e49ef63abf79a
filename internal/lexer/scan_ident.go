package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"fluo/internal/token"
)

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// scanIdentOrKeyword scans an identifier, then checks the keyword table.
// Non-ASCII identifiers are normalized to NFC so that visually identical
// names intern to the same string.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	sawUnicode := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b < utf8RuneSelf {
			break
		}
		r, size := utf8.DecodeRune(lx.cursor.File.Content[lx.cursor.Off:])
		if r == utf8.RuneError || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		sawUnicode = true
		for i := 0; i < size; i++ {
			lx.cursor.Bump()
		}
	}

	span := lx.cursor.SpanFrom(mark)
	if span.Empty() {
		// первый байт не начинает идентификатор; не зацикливаемся
		lx.cursor.Bump()
		span = lx.cursor.SpanFrom(mark)
		lx.report(diagUnknownChar, span, "unexpected character")
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.File.Text(span)}
	}
	text := lx.cursor.File.Text(span)
	if sawUnicode {
		text = norm.NFC.String(text)
	}

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}

// scanSlotRef scans $name; Text holds the name without '$'.
func (lx *Lexer) scanSlotRef() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	if lx.cursor.EOF() || !isIdentStartByte(lx.cursor.Peek()) {
		span := lx.cursor.SpanFrom(mark)
		lx.report(diagBadSlotRef, span, "expected identifier after '$'")
		return token.Token{Kind: token.Invalid, Span: span, Text: "$"}
	}

	nameMark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	name := lx.cursor.File.Text(lx.cursor.SpanFrom(nameMark))
	return token.Token{Kind: token.SlotRef, Span: lx.cursor.SpanFrom(mark), Text: name}
}
