package parser

import (
	"slices"

	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/lexer"
	"fluo/internal/macro"
	"fluo/internal/source"
	"fluo/internal/token"
	"fluo/internal/types"
)

type Options struct {
	Reporter diag.Reporter
	// Registry может прийти снаружи (общий на несколько файлов);
	// nil — парсер создаст свой.
	Registry *macro.Registry
	// Types аналогично.
	Types *types.Interner
}

type Result struct {
	File     ast.FileID
	Registry *macro.Registry
	// Failed is set after the first fatal diagnostic; the AST is
	// incomplete and must not reach the code generator.
	Failed bool
}

// Parser — состояние парсера на один файл.
//
// Parsing is strictly left-to-right with no look-ahead across unparsed
// registrations, so a syntax rule becomes usable exactly when its
// declaration finishes. The first error stops the unit: there is no
// resynchronization or best-effort recovery.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	registry *macro.Registry
	types    *types.Interner
	eval     macro.Evaluator
	lastSpan source.Span
	failed   bool

	// slotDepth > 0 while parsing inside a syntax declaration, where
	// $name is a legal primary expression.
	slotDepth int
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	registry := opts.Registry
	if registry == nil {
		registry = macro.NewRegistry()
	}
	typesIn := opts.Types
	if typesIn == nil {
		typesIn = types.NewInterner()
	}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		registry: registry,
		types:    typesIn,
		lastSpan: lx.EmptySpan(),
	}
	p.eval = macro.Evaluator{
		Builder:  arenas,
		Types:    typesIn,
		Reporter: opts.Reporter,
	}

	p.parseItems()
	return Result{
		File:     p.file,
		Registry: registry,
		Failed:   p.failed,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// atContextual reports whether the next token is the identifier text.
// Used for clause words (parse, eval, statement) that are not keywords.
func (p *Parser) atContextual(text string) bool {
	tok := p.lx.Peek()
	return tok.Kind == token.Ident && tok.Text == text
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

// expect consumes a token of the given kind or reports and fails.
func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{}, false
}

// err reports a fatal diagnostic at the next token. At EOF the span
// collapses to the end of the last consumed token, so the caret lands
// right after the code instead of past trailing trivia.
func (p *Parser) err(code diag.Code, msg string) {
	sp := p.lx.Peek().Span
	if p.at(token.EOF) {
		sp = p.lastSpan.ZeroideToEnd()
	}
	p.report(code, sp, msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.failed = true
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
// Первая же ошибка завершает разбор единицы компиляции.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) && !p.failed {
		itemID, ok := p.parseItem()
		if !ok {
			break
		}
		p.arenas.PushItem(p.file, itemID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseItem выбирает по первому токену нужный распознаватель
// top-level конструкции.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwSyntax:
		return p.parseSyntaxItem()
	case token.KwLet, token.KwPub, token.KwExtern:
		return p.parseLetItem()
	case token.KwFn:
		return p.parseFnItem()
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.LParen, token.Minus, token.LBrace:
		// statement-category extension or a bare top-level statement
		stmtID, ok := p.parseStmt()
		if !ok {
			return ast.NoItemID, false
		}
		span := p.arenas.Stmts.Get(stmtID).Span
		return p.arenas.Items.NewStmt(span, stmtID), true
	default:
		tok := p.lx.Peek()
		p.report(diag.SynUnexpectedTopLevel, tok.Span,
			"unexpected top-level construct '"+tok.Text+"'")
		return ast.NoItemID, false
	}
}

// parsePath — namespace path: ident (:: ident)*.
func (p *Parser) parsePath() ([]source.StringID, source.Span, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected identifier, got \""+p.lx.Peek().Text+"\"")
	if !ok {
		return nil, source.Span{}, false
	}
	path := []source.StringID{p.arenas.StringsInterner.Intern(first.Text)}
	span := first.Span
	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected identifier after '::'")
		if !ok {
			return nil, source.Span{}, false
		}
		path = append(path, p.arenas.StringsInterner.Intern(seg.Text))
		span = span.Cover(seg.Span)
	}
	return path, span, true
}
