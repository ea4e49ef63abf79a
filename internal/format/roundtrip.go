package format

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/lexer"
	"fluo/internal/parser"
	"fluo/internal/source"
)

// CheckRoundTrip prints the file and re-parses the output, verifying the
// two trees agree structurally. Used by `fluo fmt --check` and tests.
func CheckRoundTrip(fs *source.FileSet, b *ast.Builder, fid ast.FileID, name string) (ok bool, msg string) {
	printed := NewPrinter(b).File(fid)

	fs2 := source.NewFileSet()
	sfID := fs2.AddVirtual(name, []byte(printed))

	bag := diag.NewBag(16)
	b2 := ast.NewBuilder(ast.Hints{}, nil)
	lx := lexer.New(fs2.Get(sfID), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(fs2, lx, b2, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Failed || bag.HasErrors() {
		return false, "fmt-check: printed output does not parse"
	}

	if !sameShape(b, fid, b2, res.File) {
		return false, "fmt-check: tree differs after round-trip"
	}
	return true, "fmt-check: OK"
}

// sameShape compares by reprinting: печать детерминирована, поэтому
// одинаковый текст означает одинаковую структуру.
func sameShape(b1 *ast.Builder, f1 ast.FileID, b2 *ast.Builder, f2 ast.FileID) bool {
	return NewPrinter(b1).File(f1) == NewPrinter(b2).File(f2)
}
