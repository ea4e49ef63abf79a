package diagfmt

import (
	"strings"
	"testing"

	"fluo/internal/diag"
	"fluo/internal/source"
)

func sampleBag() (*diag.Bag, *source.FileSet) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.fl", []byte("let x: int = ;\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynExpectExpression,
		source.Span{File: fid, Start: 13, End: 14},
		"expected expression"))
	return bag, fs
}

func TestPrettyShape(t *testing.T) {
	bag, fs := sampleBag()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.HasPrefix(out, "test.fl:1:14: error[SYN2004]: expected expression\n") {
		t.Errorf("header line wrong:\n%s", out)
	}
	if !strings.Contains(out, "    let x: int = ;\n") {
		t.Errorf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing:\n%s", out)
	}
}

func TestPrettyCaretColumn(t *testing.T) {
	bag, fs := sampleBag()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short: %q", sb.String())
	}
	caretLine := lines[2]
	if idx := strings.IndexByte(caretLine, '^'); idx != 4+13 {
		t.Errorf("caret at column %d, want %d: %q", idx, 4+13, caretLine)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.fl", []byte("print 10;\n"))

	d := diag.NewError(diag.SynUnexpectedToken,
		source.Span{File: fid, Start: 0, End: 5},
		"unknown statement").
		WithNote(source.Span{File: fid, Start: 0, End: 5}, "no rule named \"print\" is registered here")

	bag := diag.NewBag(8)
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(sb.String(), "note: no rule named \"print\"") {
		t.Errorf("note missing:\n%s", sb.String())
	}

	sb.Reset()
	Pretty(&sb, bag, fs, PrettyOpts{})
	if strings.Contains(sb.String(), "note:") {
		t.Errorf("notes must be off by default:\n%s", sb.String())
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("src/deep/main.fl", PathModeBasename); got != "main.fl" {
		t.Errorf("basename = %q", got)
	}
	if got := displayPath("src/main.fl", PathModeAuto); got != "src/main.fl" {
		t.Errorf("auto = %q", got)
	}
}
