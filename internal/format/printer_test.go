package format

import (
	"strings"
	"testing"

	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/lexer"
	"fluo/internal/parser"
	"fluo/internal/source"
)

func parseSrc(t *testing.T, src string) (*source.FileSet, *ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(16)
	b := ast.NewBuilder(ast.Hints{}, nil)
	lx := lexer.New(fs.Get(fid), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Failed || bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("parse failed for %q", src)
	}
	return fs, b, res.File
}

func printSrc(t *testing.T, src string) string {
	t.Helper()
	_, b, fid := parseSrc(t, src)
	return NewPrinter(b).File(fid)
}

func TestPrintLet(t *testing.T) {
	out := printSrc(t, "let   x :int=1+2 ;")
	want := "let x: int = 1 + 2;\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestPrintPreservesPrecedence(t *testing.T) {
	cases := []struct{ src, want string }{
		{"1 + 2 * 3;", "1 + 2 * 3;\n"},
		{"(1 + 2) * 3;", "(1 + 2) * 3;\n"},
		{"1 - 2 - 3;", "1 - 2 - 3;\n"},
		{"1 - (2 - 3);", "1 - (2 - 3);\n"},
		{"-2 * 3;", "-2 * 3;\n"},
		{"-(2 * 3);", "-(2 * 3);\n"},
	}
	for _, c := range cases {
		if got := printSrc(t, c.src); got != c.want {
			t.Errorf("print(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestPrintTuples(t *testing.T) {
	cases := []struct{ src, want string }{
		{"();", "();\n"},
		{"(1,);", "(1,);\n"},
		{"(1, 2);", "(1, 2);\n"},
	}
	for _, c := range cases {
		if got := printSrc(t, c.src); got != c.want {
			t.Errorf("print(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestPrintFn(t *testing.T) {
	out := printSrc(t, "fn add(a: int, b: int) -> int { a + b; }")
	if !strings.Contains(out, "fn add(a: int, b: int) -> int {") {
		t.Errorf("missing signature: %q", out)
	}
	if !strings.Contains(out, "    a + b;") {
		t.Errorf("body not indented: %q", out)
	}
}

func TestPrintStringLiteral(t *testing.T) {
	out := printSrc(t, `let s: String = "a\nb";`)
	if !strings.Contains(out, `"a\nb"`) {
		t.Errorf("escapes must survive printing: %q", out)
	}
}

func TestSyntaxDeclarationLeavesNoTrace(t *testing.T) {
	src := "syntax noop -> statement {\n" +
		"    parse { nothing }\n" +
		"    eval { `1;` }\n" +
		"}\n" +
		"let x: int = 1;\n"
	out := printSrc(t, src)
	if strings.Contains(out, "syntax") || strings.Contains(out, "noop") {
		t.Errorf("syntax declarations must be lowered away: %q", out)
	}
	if !strings.Contains(out, "let x: int = 1;") {
		t.Errorf("remaining items must print: %q", out)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	sources := []string{
		"let x: int = 1 + 2 * 3;\npub extern let y: float;\n",
		"fn add(a: int, b: int) -> int { a + b; }\n",
		"let p: (int, String) = (1, \"x\");\n(1,);\n",
		"let f: fn (int) -> int = make();\n",
	}
	for _, src := range sources {
		fs, b, fid := parseSrc(t, src)
		ok, msg := CheckRoundTrip(fs, b, fid, "test.fl")
		if !ok {
			t.Errorf("round-trip failed for %q: %s", src, msg)
		}
	}
}
