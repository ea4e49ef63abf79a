package types

import (
	"fluo/internal/ast"
)

// Resolve converts a type annotation from the AST into a structural
// TypeID. Named types resolve by their rendered path; there is no
// cross-file namespace resolution at this layer.
func (in *Interner) Resolve(b *ast.Builder, id ast.TypeID) TypeID {
	node := b.Types.Get(id)
	if node == nil {
		return NoTypeID
	}
	switch node.Kind {
	case ast.TypeNamed:
		named, ok := b.Types.Named(id)
		if !ok {
			return NoTypeID
		}
		return in.Named(b.PathText(named.Path))
	case ast.TypeTuple:
		tuple, ok := b.Types.Tuple(id)
		if !ok {
			return NoTypeID
		}
		elems := make([]TypeID, 0, len(tuple.Elems))
		for _, e := range tuple.Elems {
			elems = append(elems, in.Resolve(b, e))
		}
		return in.Tuple(elems)
	case ast.TypeFn:
		fn, ok := b.Types.Fn(id)
		if !ok {
			return NoTypeID
		}
		params := make([]TypeID, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, in.Resolve(b, p))
		}
		ret := NoTypeID
		if fn.Ret.IsValid() {
			ret = in.Resolve(b, fn.Ret)
		}
		return in.Fn(params, ret)
	default:
		return NoTypeID
	}
}
