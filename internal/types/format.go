package types

import (
	"strings"
)

// Format renders a type the way diagnostics show it: int, String,
// (int, String), fn (int) -> int, () for unit, <unknown> otherwise.
func (in *Interner) Format(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindNamed:
		return in.names[t.Payload]
	case KindTuple:
		info := in.tuples[t.Payload]
		if len(info.Elems) == 0 {
			return "()"
		}
		parts := make([]string, len(info.Elems))
		for i, e := range info.Elems {
			parts[i] = in.Format(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindFn:
		info := in.fns[t.Payload]
		parts := make([]string, len(info.Params))
		for i, p := range info.Params {
			parts[i] = in.Format(p)
		}
		out := "fn (" + strings.Join(parts, ", ") + ")"
		if info.Ret != NoTypeID {
			out += " -> " + in.Format(info.Ret)
		}
		return out
	case KindUnknown:
		return "<unknown>"
	default:
		return "<invalid>"
	}
}
