package driver

import (
	"fluo/internal/ast"
	"fluo/internal/diag"
	"fluo/internal/lexer"
	"fluo/internal/macro"
	"fluo/internal/parser"
	"fluo/internal/source"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Builder  *ast.Builder
	FileID   ast.FileID
	Registry *macro.Registry
	Bag      *diag.Bag
	Failed   bool
}

type ParseOptions struct {
	MaxDiagnostics int
	// AllowKeywordNames пробрасывается в реестр правил из fluo.toml.
	AllowKeywordNames bool
}

func Parse(filePath string, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fs.Get(fileID), opts), nil
}

// ParseVirtual parses in-memory content (stdin, tests).
func ParseVirtual(name string, content []byte, opts ParseOptions) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fs.Get(fileID), opts)
}

func parseLoaded(fs *source.FileSet, file *source.File, opts ParseOptions) *ParseResult {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 64
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	registry := macro.NewRegistry()
	registry.AllowKeywordNames = opts.AllowKeywordNames

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter: reporter,
		Registry: registry,
	})

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Builder:  builder,
		FileID:   result.File,
		Registry: result.Registry,
		Bag:      bag,
		Failed:   result.Failed,
	}
}
