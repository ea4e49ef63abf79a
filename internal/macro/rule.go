package macro

import (
	"fluo/internal/ast"
	"fluo/internal/source"
	"fluo/internal/token"
)

// PatternElemKind discriminates pattern elements of a parse clause.
type PatternElemKind uint8

const (
	// PatLiteral requires an exact token match.
	PatLiteral PatternElemKind = iota
	// PatCapture parses a sub-construct and binds it under Name.
	PatCapture
)

// CaptureKind is the syntactic category a capture slot parses.
type CaptureKind uint8

const (
	// CaptureExpr captures a full expression (the default).
	CaptureExpr CaptureKind = iota
	// CaptureIdent captures a single identifier.
	CaptureIdent
)

// PatternElem is one element of a registered parse pattern.
type PatternElem struct {
	Kind PatternElemKind
	Span source.Span

	// PatLiteral
	Tok  token.Kind
	Text string // compared for Ident tokens; ignored otherwise

	// PatCapture
	Name    source.StringID
	Capture CaptureKind
}

// Rule is a registered syntax extension: its concrete grammar plus the
// compiled eval program. Rules are owned by the Registry and referenced,
// never copied, during dispatch.
type Rule struct {
	Name     string
	NameID   source.StringID
	Category ast.SyntaxCategory
	Pattern  []PatternElem
	Program  []Instr
	DeclSpan source.Span
}

// Slots returns the capture-slot names declared by the pattern, in order.
func (r *Rule) Slots() []source.StringID {
	var out []source.StringID
	for _, el := range r.Pattern {
		if el.Kind == PatCapture {
			out = append(out, el.Name)
		}
	}
	return out
}
