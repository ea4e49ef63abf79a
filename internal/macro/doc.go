// Package macro implements user-defined syntax extensions: the grammar
// registry the parser consults for dispatch, the compiled representation
// of parse patterns and eval programs, and the evaluator that lowers an
// invocation or raises a compile-time diagnostic.
//
// An eval program is a closed instruction set (branch on a slot's static
// type, emit a template, raise), not a general-purpose interpreter.
package macro
