// Package parser turns a token stream into the arena AST.
//
// The grammar is extensible: syntax declarations register new rules in
// the macro registry as their closing brace is consumed, and dispatch
// consults the registry before the base grammar sees an identifier.
// Invocations are lowered inline, so the produced AST contains only
// core constructs. The first fatal diagnostic stops the unit.
package parser
