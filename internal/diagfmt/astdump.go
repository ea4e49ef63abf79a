package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fluo/internal/ast"
)

// DumpAST печатает дерево файла в отладочном древовидном виде.
// Формат стабилен ровно настолько, чтобы на него могли смотреть тесты.
func DumpAST(w io.Writer, b *ast.Builder, fid ast.FileID) {
	d := dumper{w: w, b: b}
	file := b.Files.Get(fid)
	fmt.Fprintf(w, "File (%d items)\n", len(file.Items))
	for _, item := range file.Items {
		d.item(item, 1)
	}
}

type dumper struct {
	w io.Writer
	b *ast.Builder
}

func (d *dumper) printf(depth int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) item(id ast.ItemID, depth int) {
	item := d.b.Items.Get(id)
	switch item.Kind {
	case ast.ItemLet:
		data, _ := d.b.Items.Let(id)
		d.letDecl(&data.Decl, depth)
	case ast.ItemFn:
		data, _ := d.b.Items.Fn(id)
		d.printf(depth, "Fn %s (%d params)", d.b.PathText(data.Path), len(data.Params))
		d.stmt(data.Body, depth+1)
	case ast.ItemSyntax:
		data, _ := d.b.Items.Syntax(id)
		d.printf(depth, "Syntax %s -> %s",
			d.b.StringsInterner.MustLookup(data.Name), data.Category)
	case ast.ItemStmt:
		data, _ := d.b.Items.Stmt(id)
		d.stmt(data.Stmt, depth)
	}
}

func (d *dumper) letDecl(decl *ast.LetDecl, depth int) {
	mods := ""
	if decl.Mods.Has(ast.LetPub) {
		mods += "pub "
	}
	if decl.Mods.Has(ast.LetExtern) {
		mods += "extern "
	}
	d.printf(depth, "Let %s%s", mods, d.b.PathText(decl.Path))
	if decl.Value.IsValid() {
		d.expr(decl.Value, depth+1)
	}
}

func (d *dumper) stmt(id ast.StmtID, depth int) {
	stmt := d.b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := d.b.Stmts.Let(id)
		d.letDecl(&data.Decl, depth)
	case ast.StmtExpr:
		data, _ := d.b.Stmts.Expr(id)
		d.printf(depth, "ExprStmt")
		d.expr(data.Expr, depth+1)
	case ast.StmtBlock:
		data, _ := d.b.Stmts.Block(id)
		d.printf(depth, "Block (%d stmts)", len(data.Stmts))
		for _, s := range data.Stmts {
			d.stmt(s, depth+1)
		}
	}
}

func (d *dumper) expr(id ast.ExprID, depth int) {
	expr := d.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := d.b.Exprs.Ident(id)
		d.printf(depth, "Ident %s", d.b.PathText(data.Path))
	case ast.ExprLit:
		data, _ := d.b.Exprs.Literal(id)
		d.printf(depth, "Lit %s", d.b.StringsInterner.MustLookup(data.Value))
	case ast.ExprUnary:
		data, _ := d.b.Exprs.Unary(id)
		d.printf(depth, "Unary -")
		d.expr(data.Operand, depth+1)
	case ast.ExprBinary:
		data, _ := d.b.Exprs.Binary(id)
		d.printf(depth, "Binary %s", data.Op)
		d.expr(data.Left, depth+1)
		d.expr(data.Right, depth+1)
	case ast.ExprTuple:
		data, _ := d.b.Exprs.Tuple(id)
		d.printf(depth, "Tuple (%d elems)", len(data.Elems))
		for _, elem := range data.Elems {
			d.expr(elem, depth+1)
		}
	case ast.ExprGroup:
		data, _ := d.b.Exprs.Group(id)
		d.printf(depth, "Group")
		d.expr(data.Inner, depth+1)
	case ast.ExprCall:
		data, _ := d.b.Exprs.Call(id)
		d.printf(depth, "Call (%d args)", len(data.Args))
		d.expr(data.Callee, depth+1)
		for _, arg := range data.Args {
			d.expr(arg, depth+1)
		}
	case ast.ExprSlot:
		data, _ := d.b.Exprs.Slot(id)
		d.printf(depth, "Slot $%s", d.b.StringsInterner.MustLookup(data.Name))
	}
}
