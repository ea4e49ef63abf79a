// Package diagfmt renders diagnostics, token streams and AST dumps for
// humans (colored terminal output) and machines (JSON).
package diagfmt
