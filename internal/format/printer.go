package format

import (
	"strconv"
	"strings"

	"fluo/internal/ast"
)

// Printer renders the lowered AST back to canonical source text.
// Печатаем из дерева, не из исходных байт: после лоуверинга спаны
// указывают в объявление правила, а не в осмысленный текст.
type Printer struct {
	b      *ast.Builder
	sb     strings.Builder
	indent int
}

func NewPrinter(b *ast.Builder) *Printer {
	return &Printer{b: b}
}

// File renders every top-level item, one per line.
func (pr *Printer) File(id ast.FileID) string {
	pr.sb.Reset()
	file := pr.b.Files.Get(id)
	for _, item := range file.Items {
		pr.item(item)
	}
	return pr.sb.String()
}

// Expr renders a single expression, mostly for diagnostics and tests.
func (pr *Printer) Expr(id ast.ExprID) string {
	pr.sb.Reset()
	pr.expr(id, 0)
	return pr.sb.String()
}

// Stmt renders a single statement.
func (pr *Printer) Stmt(id ast.StmtID) string {
	pr.sb.Reset()
	pr.stmt(id)
	return pr.sb.String()
}

func (pr *Printer) write(s string) { pr.sb.WriteString(s) }

func (pr *Printer) pad() {
	for i := 0; i < pr.indent; i++ {
		pr.sb.WriteString("    ")
	}
}

func (pr *Printer) item(id ast.ItemID) {
	item := pr.b.Items.Get(id)
	switch item.Kind {
	case ast.ItemLet:
		data, _ := pr.b.Items.Let(id)
		pr.pad()
		pr.letDecl(&data.Decl)
		pr.write("\n")
	case ast.ItemFn:
		data, _ := pr.b.Items.Fn(id)
		pr.fnItem(data)
	case ast.ItemSyntax:
		// объявления syntax уже отработали; канонический вывод
		// содержит только ядро языка
	case ast.ItemStmt:
		data, _ := pr.b.Items.Stmt(id)
		pr.pad()
		pr.stmt(data.Stmt)
		pr.write("\n")
	}
}

func (pr *Printer) letDecl(decl *ast.LetDecl) {
	if decl.Mods.Has(ast.LetPub) {
		pr.write("pub ")
	}
	if decl.Mods.Has(ast.LetExtern) {
		pr.write("extern ")
	}
	pr.write("let ")
	pr.write(pr.b.PathText(decl.Path))
	pr.write(": ")
	pr.typeExpr(decl.Type)
	if decl.Value.IsValid() {
		pr.write(" = ")
		pr.expr(decl.Value, 0)
	}
	pr.write(";")
}

func (pr *Printer) fnItem(data *ast.ItemFnData) {
	pr.pad()
	pr.write("fn ")
	pr.write(pr.b.PathText(data.Path))
	pr.write("(")
	for i, param := range data.Params {
		if i > 0 {
			pr.write(", ")
		}
		pr.write(pr.b.StringsInterner.MustLookup(param.Name))
		pr.write(": ")
		pr.typeExpr(param.Type)
	}
	pr.write(")")
	if data.Ret.IsValid() {
		pr.write(" -> ")
		pr.typeExpr(data.Ret)
	}
	pr.write(" ")
	pr.block(data.Body)
	pr.write("\n")
}

func (pr *Printer) stmt(id ast.StmtID) {
	stmt := pr.b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := pr.b.Stmts.Let(id)
		pr.letDecl(&data.Decl)
	case ast.StmtExpr:
		data, _ := pr.b.Stmts.Expr(id)
		pr.expr(data.Expr, 0)
		pr.write(";")
	case ast.StmtBlock:
		pr.block(id)
	}
}

func (pr *Printer) block(id ast.StmtID) {
	data, ok := pr.b.Stmts.Block(id)
	if !ok {
		return
	}
	pr.write("{\n")
	pr.indent++
	for _, stmt := range data.Stmts {
		pr.pad()
		pr.stmt(stmt)
		pr.write("\n")
	}
	pr.indent--
	pr.pad()
	pr.write("}")
}

// Приоритеты для расстановки скобок при печати; согласованы с таблицей
// парсера. Подстановка может вклеить фрагмент, который связывает слабее
// родителя, поэтому печать опирается на дерево, а не на исходные скобки.
const (
	printPrecAdd  = 1
	printPrecMul  = 2
	printPrecUnit = 3 // унарные и постфиксные позиции
)

func binaryPrec(op ast.ExprBinaryOp) int {
	switch op {
	case ast.ExprBinaryMul, ast.ExprBinaryDiv, ast.ExprBinaryMod:
		return printPrecMul
	default:
		return printPrecAdd
	}
}

// expr prints with enough parentheses to reparse into the same tree.
// parentPrec — сила связывания контекста; 0 означает её отсутствие.
func (pr *Printer) expr(id ast.ExprID, parentPrec int) {
	expr := pr.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := pr.b.Exprs.Ident(id)
		pr.write(pr.b.PathText(data.Path))
	case ast.ExprLit:
		data, _ := pr.b.Exprs.Literal(id)
		pr.literal(data)
	case ast.ExprUnary:
		data, _ := pr.b.Exprs.Unary(id)
		if parentPrec > printPrecMul {
			pr.write("(")
			pr.write("-")
			pr.expr(data.Operand, printPrecUnit)
			pr.write(")")
			return
		}
		pr.write("-")
		pr.expr(data.Operand, printPrecUnit)
	case ast.ExprBinary:
		data, _ := pr.b.Exprs.Binary(id)
		prec := binaryPrec(data.Op)
		if prec < parentPrec {
			pr.write("(")
		}
		pr.expr(data.Left, prec)
		pr.write(" " + data.Op.String() + " ")
		// правый операнд на уровень строже: левая ассоциативность
		pr.expr(data.Right, prec+1)
		if prec < parentPrec {
			pr.write(")")
		}
	case ast.ExprTuple:
		data, _ := pr.b.Exprs.Tuple(id)
		pr.write("(")
		for i, elem := range data.Elems {
			if i > 0 {
				pr.write(", ")
			}
			pr.expr(elem, 0)
		}
		if len(data.Elems) == 1 {
			pr.write(",")
		}
		pr.write(")")
	case ast.ExprGroup:
		data, _ := pr.b.Exprs.Group(id)
		pr.write("(")
		pr.expr(data.Inner, 0)
		pr.write(")")
	case ast.ExprCall:
		data, _ := pr.b.Exprs.Call(id)
		pr.expr(data.Callee, printPrecUnit)
		pr.write("(")
		for i, arg := range data.Args {
			if i > 0 {
				pr.write(", ")
			}
			pr.expr(arg, 0)
		}
		pr.write(")")
	case ast.ExprSlot:
		data, _ := pr.b.Exprs.Slot(id)
		pr.write("$" + pr.b.StringsInterner.MustLookup(data.Name))
	}
}

func (pr *Printer) literal(data *ast.ExprLiteralData) {
	value := pr.b.StringsInterner.MustLookup(data.Value)
	switch data.Kind {
	case ast.ExprLitString:
		pr.write(strconv.Quote(value))
	default:
		pr.write(value)
	}
}

func (pr *Printer) typeExpr(id ast.TypeID) {
	if !id.IsValid() {
		return
	}
	tt := pr.b.Types.Get(id)
	switch tt.Kind {
	case ast.TypeNamed:
		data, _ := pr.b.Types.Named(id)
		pr.write(pr.b.PathText(data.Path))
	case ast.TypeTuple:
		data, _ := pr.b.Types.Tuple(id)
		pr.write("(")
		for i, elem := range data.Elems {
			if i > 0 {
				pr.write(", ")
			}
			pr.typeExpr(elem)
		}
		pr.write(")")
	case ast.TypeFn:
		data, _ := pr.b.Types.Fn(id)
		pr.write("fn (")
		for i, param := range data.Params {
			if i > 0 {
				pr.write(", ")
			}
			pr.typeExpr(param)
		}
		pr.write(")")
		if data.Ret.IsValid() {
			pr.write(" -> ")
			pr.typeExpr(data.Ret)
		}
	}
}
