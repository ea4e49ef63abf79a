// Package format prints the lowered AST back to canonical source.
//
// Because syntax extensions are lowered inline during parsing, the
// printed output contains only core-language constructs; re-parsing it
// never needs the original registry.
package format
