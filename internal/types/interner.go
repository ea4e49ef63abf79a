package types

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types the literal grammar
// can produce.
type Builtins struct {
	Unknown TypeID
	Int     TypeID
	Float   TypeID
	Bool    TypeID
	String  TypeID
	Unit    TypeID
}

// Interner provides stable TypeIDs with structural deduplication: two
// tuples with equal element sequences intern to the same ID.
type Interner struct {
	types    []Type
	names    []string
	tuples   []TupleInfo
	fns      []FnInfo
	index    map[string]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		types: []Type{{Kind: KindInvalid}}, // reserve 0 as sentinel
		index: make(map[string]TypeID, 64),
	}
	in.builtins.Unknown = in.intern(Type{Kind: KindUnknown}, "?")
	in.builtins.Int = in.Named("int")
	in.builtins.Float = in.Named("float")
	in.builtins.Bool = in.Named("bool")
	in.builtins.String = in.Named("String")
	in.builtins.Unit = in.Tuple(nil)
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

func (in *Interner) intern(t Type, key string) TypeID {
	if id, ok := in.index[key]; ok {
		return id
	}
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[key] = id
	return id
}

// Named interns a named (namespace) type.
func (in *Interner) Named(name string) TypeID {
	key := "n:" + name
	if id, ok := in.index[key]; ok {
		return id
	}
	slot, err := safecast.Conv[uint32](len(in.names))
	if err != nil {
		panic(fmt.Errorf("names overflow: %w", err))
	}
	in.names = append(in.names, name)
	return in.intern(Type{Kind: KindNamed, Payload: slot}, key)
}

// Tuple interns a tuple type; nil or empty elems yields the unit type.
func (in *Interner) Tuple(elems []TypeID) TypeID {
	key := tupleKey(elems)
	if id, ok := in.index[key]; ok {
		return id
	}
	slot, err := safecast.Conv[uint32](len(in.tuples))
	if err != nil {
		panic(fmt.Errorf("tuples overflow: %w", err))
	}
	in.tuples = append(in.tuples, TupleInfo{Elems: append([]TypeID(nil), elems...)})
	return in.intern(Type{Kind: KindTuple, Payload: slot}, key)
}

// Fn interns a function type.
func (in *Interner) Fn(params []TypeID, ret TypeID) TypeID {
	key := fnKey(params, ret)
	if id, ok := in.index[key]; ok {
		return id
	}
	slot, err := safecast.Conv[uint32](len(in.fns))
	if err != nil {
		panic(fmt.Errorf("fns overflow: %w", err))
	}
	in.fns = append(in.fns, FnInfo{Params: append([]TypeID(nil), params...), Ret: ret})
	return in.intern(Type{Kind: KindFn, Payload: slot}, key)
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// Name returns the name of a named type.
func (in *Interner) Name(id TypeID) (string, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindNamed {
		return "", false
	}
	return in.names[t.Payload], true
}

// TupleInfo returns element types for a tuple TypeID.
func (in *Interner) TupleInfo(id TypeID) (*TupleInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindTuple {
		return nil, false
	}
	return &in.tuples[t.Payload], true
}

// FnInfo returns parameter/return types for a function TypeID.
func (in *Interner) FnInfo(id TypeID) (*FnInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindFn {
		return nil, false
	}
	return &in.fns[t.Payload], true
}

func tupleKey(elems []TypeID) string {
	var sb strings.Builder
	sb.WriteString("t:")
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", e)
	}
	return sb.String()
}

func fnKey(params []TypeID, ret TypeID) string {
	var sb strings.Builder
	sb.WriteString("f:")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", p)
	}
	fmt.Fprintf(&sb, "->%d", ret)
	return sb.String()
}
