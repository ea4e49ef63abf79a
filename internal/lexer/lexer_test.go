package lexer

import (
	"testing"

	"fluo/internal/diag"
	"fluo/internal/source"
	"fluo/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(16)
	lx := New(fs.Get(fid), Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, bag
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestBasicTokens(t *testing.T) {
	tokens, bag := lexAll(t, `let x: int = 1 + 2;`)
	if bag.HasErrors() {
		t.Fatal("unexpected lex errors")
	}
	want := []token.Kind{
		token.KwLet, token.Ident, token.Colon, token.Ident, token.Assign,
		token.IntLit, token.Plus, token.IntLit, token.Semicolon,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	tokens, _ := lexAll(t, "syntax if else is fn pub extern true false lettuce")
	want := []token.Kind{
		token.KwSyntax, token.KwIf, token.KwElse, token.KwIs, token.KwFn,
		token.KwPub, token.KwExtern, token.KwTrue, token.KwFalse, token.Ident,
	}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if tokens[len(tokens)-1].Text != "lettuce" {
		t.Errorf("keyword prefix must not split an identifier: %q", tokens[len(tokens)-1].Text)
	}
}

func TestSlotRef(t *testing.T) {
	tokens, bag := lexAll(t, "$value $x1")
	if bag.HasErrors() {
		t.Fatal("unexpected lex errors")
	}
	if tokens[0].Kind != token.SlotRef || tokens[0].Text != "value" {
		t.Errorf("token 0 = %v %q", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.SlotRef || tokens[1].Text != "x1" {
		t.Errorf("token 1 = %v %q", tokens[1].Kind, tokens[1].Text)
	}
}

func TestBadSlotRef(t *testing.T) {
	_, bag := lexAll(t, "$ 1")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexBadSlotRef {
			found = true
		}
	}
	if !found {
		t.Fatal("expected LexBadSlotRef")
	}
}

func TestStringEscapes(t *testing.T) {
	tokens, bag := lexAll(t, `"a\nb\"c"`)
	if bag.HasErrors() {
		t.Fatal("unexpected lex errors")
	}
	if tokens[0].Kind != token.StringLit {
		t.Fatalf("kind = %v", tokens[0].Kind)
	}
	if tokens[0].Text != "a\nb\"c" {
		t.Errorf("decoded text = %q", tokens[0].Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `"oops`)
	if !bag.HasErrors() {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestNumbers(t *testing.T) {
	tokens, bag := lexAll(t, "42 1_000 3.14 2.5")
	if bag.HasErrors() {
		t.Fatal("unexpected lex errors")
	}
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.IntLit, "42"},
		{token.IntLit, "1_000"},
		{token.FloatLit, "3.14"},
		{token.FloatLit, "2.5"},
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Text != w.text {
			t.Errorf("token %d = %v %q, want %v %q", i, tokens[i].Kind, tokens[i].Text, w.kind, w.text)
		}
	}
}

func TestTrailingUnderscoreNumber(t *testing.T) {
	_, bag := lexAll(t, "1_")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexBadNumber {
			found = true
		}
	}
	if !found {
		t.Fatal("expected LexBadNumber for trailing underscore")
	}
}

func TestComments(t *testing.T) {
	tokens, bag := lexAll(t, "1 // line\n/* block /* nested */ */ 2")
	if bag.HasErrors() {
		t.Fatal("unexpected lex errors")
	}
	got := kinds(tokens)
	if len(got) != 2 || got[0] != token.IntLit || got[1] != token.IntLit {
		t.Fatalf("comments must be trivia, got %v", got)
	}
}

func TestOperators(t *testing.T) {
	tokens, _ := lexAll(t, "-> :: : ; , . ( ) { } ` + - * / % =")
	want := []token.Kind{
		token.Arrow, token.ColonColon, token.Colon, token.Semicolon,
		token.Comma, token.Dot, token.LParen, token.RParen,
		token.LBrace, token.RBrace, token.Backtick,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Assign,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPeekIsStable(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.fl", []byte("let x"))
	lx := New(fs.Get(fid), Options{})

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Fatal("Peek must not consume")
	}
	if next := lx.Next(); next != p1 {
		t.Fatal("Next must return the peeked token")
	}
}
