package parser_test

import (
	"strings"
	"testing"

	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/format"
	"fluo/internal/lexer"
	"fluo/internal/macro"
	"fluo/internal/parser"
	"fluo/internal/source"
)

type parseOutcome struct {
	Builder *ast.Builder
	Result  parser.Result
	Bag     *diag.Bag
}

func parseSrc(t *testing.T, src string) parseOutcome {
	t.Helper()
	return parseSrcOpts(t, src, parser.Options{})
}

func parseSrcOpts(t *testing.T, src string, opts parser.Options) parseOutcome {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(16)
	opts.Reporter = &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{}, nil)
	lx := lexer.New(fs.Get(fid), lexer.Options{Reporter: opts.Reporter})
	res := parser.ParseFile(fs, lx, builder, opts)
	return parseOutcome{Builder: builder, Result: res, Bag: bag}
}

func requireOk(t *testing.T, out parseOutcome) {
	t.Helper()
	if out.Result.Failed || out.Bag.HasErrors() {
		for _, d := range out.Bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatal("parse failed unexpectedly")
	}
}

func hasCode(out parseOutcome, code diag.Code) bool {
	for _, d := range out.Bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func requireCode(t *testing.T, out parseOutcome, code diag.Code) {
	t.Helper()
	if !out.Result.Failed {
		t.Fatal("expected parse to fail")
	}
	if !hasCode(out, code) {
		for _, d := range out.Bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("expected diagnostic %s", code.ID())
	}
}

func printFile(out parseOutcome) string {
	return format.NewPrinter(out.Builder).File(out.Result.File)
}

func firstExprStmt(t *testing.T, out parseOutcome, idx int) ast.ExprID {
	t.Helper()
	file := out.Builder.Files.Get(out.Result.File)
	if idx >= len(file.Items) {
		t.Fatalf("file has %d items, want index %d", len(file.Items), idx)
	}
	stmtData, ok := out.Builder.Items.Stmt(file.Items[idx])
	if !ok {
		t.Fatalf("item %d is not a statement", idx)
	}
	exprData, ok := out.Builder.Stmts.Expr(stmtData.Stmt)
	if !ok {
		t.Fatalf("statement %d is not an expression statement", idx)
	}
	return exprData.Expr
}

func TestBinaryPrecedence(t *testing.T) {
	out := parseSrc(t, "2 + 3 * 4;")
	requireOk(t, out)

	root := firstExprStmt(t, out, 0)
	bin, ok := out.Builder.Exprs.Binary(root)
	if !ok || bin.Op != ast.ExprBinaryAdd {
		t.Fatalf("root should be +, got kind %v", out.Builder.Exprs.Get(root).Kind)
	}
	right, ok := out.Builder.Exprs.Binary(bin.Right)
	if !ok || right.Op != ast.ExprBinaryMul {
		t.Fatal("right operand of + should be the * subtree")
	}
}

func TestUnaryMinusBindsTighter(t *testing.T) {
	out := parseSrc(t, "-2 * 3;")
	requireOk(t, out)

	root := firstExprStmt(t, out, 0)
	bin, ok := out.Builder.Exprs.Binary(root)
	if !ok || bin.Op != ast.ExprBinaryMul {
		t.Fatal("root should be *")
	}
	if out.Builder.Exprs.Get(bin.Left).Kind != ast.ExprUnary {
		t.Fatal("left operand should be the unary minus")
	}
}

func TestLeftAssociativity(t *testing.T) {
	out := parseSrc(t, "1 - 2 - 3;")
	requireOk(t, out)

	root := firstExprStmt(t, out, 0)
	bin, _ := out.Builder.Exprs.Binary(root)
	if bin == nil || bin.Op != ast.ExprBinarySub {
		t.Fatal("root should be -")
	}
	left, ok := out.Builder.Exprs.Binary(bin.Left)
	if !ok || left.Op != ast.ExprBinarySub {
		t.Fatal("1 - 2 - 3 should group as (1 - 2) - 3")
	}
}

func TestParenDisambiguation(t *testing.T) {
	out := parseSrc(t, "();\n(1);\n(1,);\n(1, 2);")
	requireOk(t, out)

	wantKinds := []ast.ExprKind{ast.ExprTuple, ast.ExprGroup, ast.ExprTuple, ast.ExprTuple}
	wantElems := []int{0, -1, 1, 2}
	for i, want := range wantKinds {
		expr := firstExprStmt(t, out, i)
		got := out.Builder.Exprs.Get(expr).Kind
		if got != want {
			t.Errorf("item %d: kind = %v, want %v", i, got, want)
			continue
		}
		if want == ast.ExprTuple {
			data, _ := out.Builder.Exprs.Tuple(expr)
			if len(data.Elems) != wantElems[i] {
				t.Errorf("item %d: tuple has %d elems, want %d", i, len(data.Elems), wantElems[i])
			}
		}
	}
}

func TestLetModifiers(t *testing.T) {
	out := parseSrc(t, "pub extern let std::core::print: fn (int);")
	requireOk(t, out)

	file := out.Builder.Files.Get(out.Result.File)
	letData, ok := out.Builder.Items.Let(file.Items[0])
	if !ok {
		t.Fatal("item 0 should be a let declaration")
	}
	if !letData.Decl.Mods.Has(ast.LetPub) || !letData.Decl.Mods.Has(ast.LetExtern) {
		t.Fatal("pub extern modifiers lost")
	}
	if out.Builder.PathText(letData.Decl.Path) != "std::core::print" {
		t.Fatalf("path = %q", out.Builder.PathText(letData.Decl.Path))
	}
}

func TestModifierOrderRejected(t *testing.T) {
	out := parseSrc(t, "extern pub let x: int;")
	requireCode(t, out, diag.SynModifierOrder)
}

func TestFnItem(t *testing.T) {
	out := parseSrc(t, "fn math::add(a: int, b: int) -> int {\n    a + b;\n}")
	requireOk(t, out)

	file := out.Builder.Files.Get(out.Result.File)
	fnData, ok := out.Builder.Items.Fn(file.Items[0])
	if !ok {
		t.Fatal("item 0 should be a fn")
	}
	if len(fnData.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(fnData.Params))
	}
	if !fnData.Ret.IsValid() {
		t.Fatal("return annotation lost")
	}
}

const printDecl = `syntax print -> statement {
    parse { print -> $value ; }
    eval {
        if $value is int {
            ` + "`std::core::print($value);`" + `
        } else {
            comp::raise("Invalid print type " + $value.type);
        }
    }
}`

func TestPrintExtensionLowersIntLiteral(t *testing.T) {
	out := parseSrc(t, printDecl+"\nprint -> 10;")
	requireOk(t, out)

	printed := printFile(out)
	if !strings.Contains(printed, "std::core::print(10);") {
		t.Fatalf("lowered output missing call, got:\n%s", printed)
	}
	// в итоговом дереве не должно остаться конструкции вызова расширения
	if strings.Contains(printed, "print ->") {
		t.Fatalf("invocation survived lowering:\n%s", printed)
	}
}

func TestPrintExtensionRaisesOnString(t *testing.T) {
	out := parseSrc(t, printDecl+"\nprint -> \"x\";")
	requireCode(t, out, diag.MacUserRaise)

	for _, d := range out.Bag.Items() {
		if d.Code == diag.MacUserRaise {
			if d.Message != "Invalid print type String" {
				t.Fatalf("raise message = %q, want %q", d.Message, "Invalid print type String")
			}
			return
		}
	}
}

func TestUseBeforeRegisterFails(t *testing.T) {
	out := parseSrc(t, "print -> 10;\n"+printDecl)
	if !out.Result.Failed || !out.Bag.HasErrors() {
		t.Fatal("invocation before registration must fail")
	}
}

func TestDuplicateRuleRejected(t *testing.T) {
	out := parseSrc(t, printDecl+"\n"+printDecl)
	requireCode(t, out, diag.MacDuplicateRule)
}

func TestKeywordRuleNameRejected(t *testing.T) {
	src := `syntax let -> statement {
    parse { let ; }
    eval { ` + "`1;`" + ` }
}`
	out := parseSrc(t, src)
	requireCode(t, out, diag.MacReservedName)
}

func TestKeywordRuleNameAllowedByConfig(t *testing.T) {
	src := `syntax let -> statement {
    parse { let ; }
    eval { ` + "`1;`" + ` }
}`
	registry := macro.NewRegistry()
	registry.AllowKeywordNames = true
	out := parseSrcOpts(t, src, parser.Options{Registry: registry})
	requireOk(t, out)
	if _, ok := registry.Lookup("let"); !ok {
		t.Fatal("rule should be registered under the keyword name")
	}
}

func TestNoMatchingBranchWithoutElse(t *testing.T) {
	src := `syntax show -> statement {
    parse { show $value ; }
    eval {
        if $value is int { ` + "`std::core::print($value);`" + ` }
    }
}
show "text";`
	out := parseSrc(t, src)
	requireCode(t, out, diag.MacNoMatchingBranch)
}

func TestElseIfChain(t *testing.T) {
	src := `syntax show -> statement {
    parse { show $value ; }
    eval {
        if $value is int { ` + "`std::core::print_int($value);`" + ` }
        else if $value is String { ` + "`std::core::print_str($value);`" + ` }
        else { ` + "`std::core::print_any($value);`" + ` }
    }
}
show "hi";
show 1.5;`
	out := parseSrc(t, src)
	requireOk(t, out)

	printed := printFile(out)
	if !strings.Contains(printed, `std::core::print_str("hi");`) {
		t.Fatalf("string branch not taken:\n%s", printed)
	}
	if !strings.Contains(printed, "std::core::print_any(1.5);") {
		t.Fatalf("else branch not taken:\n%s", printed)
	}
}

func TestExpressionCategoryExtension(t *testing.T) {
	src := `syntax twice -> expression {
    parse { twice $value }
    eval { ` + "`$value * 2`" + ` }
}
let x: int = twice 5;
let y: int = 1 + twice 3;`
	out := parseSrc(t, src)
	requireOk(t, out)

	printed := printFile(out)
	if !strings.Contains(printed, "let x: int = 5 * 2;") {
		t.Fatalf("expression lowering wrong:\n%s", printed)
	}
	if !strings.Contains(printed, "let y: int = 1 + 3 * 2;") {
		t.Fatalf("expression lowering inside a larger expression wrong:\n%s", printed)
	}
}

func TestStatementRuleNotUsableAsExpression(t *testing.T) {
	out := parseSrc(t, printDecl+"\nlet x: int = print -> 1;")
	if !out.Result.Failed {
		t.Fatal("statement-category rule must not parse in expression position")
	}
}

func TestIdentCapture(t *testing.T) {
	src := `syntax zero -> statement {
    parse { zero $name:ident ; }
    eval { ` + "`std::core::reset($name);`" + ` }
}
zero counter;`
	out := parseSrc(t, src)
	requireOk(t, out)

	printed := printFile(out)
	if !strings.Contains(printed, "std::core::reset(counter);") {
		t.Fatalf("ident capture lowering wrong:\n%s", printed)
	}
}

func TestSlotOutsideSyntaxDeclaration(t *testing.T) {
	out := parseSrc(t, "let x: int = $v;")
	requireCode(t, out, diag.SynSlotOutsideMacro)
}

func TestEmptyPatternRejected(t *testing.T) {
	src := `syntax nothing -> statement {
    parse { }
    eval { ` + "`1;`" + ` }
}`
	out := parseSrc(t, src)
	requireCode(t, out, diag.SynEmptyPattern)
}

func TestDuplicateSlotRejected(t *testing.T) {
	src := `syntax pair -> statement {
    parse { pair $a $a ; }
    eval { ` + "`1;`" + ` }
}`
	out := parseSrc(t, src)
	requireCode(t, out, diag.SynDuplicateSlot)
}

func TestSyntaxDeclarationRejectedInBlock(t *testing.T) {
	src := `fn main() {
    syntax broken -> statement {
        parse { broken ; }
        eval { ` + "`1;`" + ` }
    }
}`
	out := parseSrc(t, src)
	requireCode(t, out, diag.SynUnexpectedToken)
}

func TestFirstErrorStopsUnit(t *testing.T) {
	out := parseSrc(t, "let x: int = ;\nlet y: int = 1;")
	if !out.Result.Failed {
		t.Fatal("expected failure")
	}
	// после первой ошибки разбор останавливается, второй let не попадает в дерево
	file := out.Builder.Files.Get(out.Result.File)
	if len(file.Items) != 0 {
		t.Fatalf("items after fatal error = %d, want 0", len(file.Items))
	}
}

func TestEvalWithoutOutput(t *testing.T) {
	src := `syntax noop -> statement {
    parse { noop ; }
    eval { }
}
noop;`
	out := parseSrc(t, src)
	requireCode(t, out, diag.MacNoOutput)
}

func TestUnboundSlotInTemplate(t *testing.T) {
	src := `syntax one -> statement {
    parse { one $a ; }
    eval { ` + "`std::core::print($b);`" + ` }
}
one 1;`
	out := parseSrc(t, src)
	requireCode(t, out, diag.MacUnboundSlot)
}

func TestErrorAtEOFAnchorsAfterLastToken(t *testing.T) {
	// пропущенная ';' перед EOF: каретка должна встать сразу за "1",
	// а не за хвостовыми пустыми строками
	out := parseSrc(t, "let x: int = 1\n\n\n")
	requireCode(t, out, diag.SynExpectSemicolon)

	for _, d := range out.Bag.Items() {
		if d.Code != diag.SynExpectSemicolon {
			continue
		}
		if d.Primary.Start != 14 || d.Primary.End != 14 {
			t.Errorf("diagnostic span = %d..%d, want 14..14", d.Primary.Start, d.Primary.End)
		}
	}
}
