package types

import "testing"

func TestStructuralIdentity(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if in.Named("int") != b.Int {
		t.Error("named int must intern to the builtin ID")
	}
	if in.Named("int") != in.Named("int") {
		t.Error("same name must intern to the same ID")
	}
	if in.Named("int") == in.Named("float") {
		t.Error("distinct names must not collide")
	}

	t1 := in.Tuple([]TypeID{b.Int, b.String})
	t2 := in.Tuple([]TypeID{b.Int, b.String})
	if t1 != t2 {
		t.Error("equal tuples must intern to the same ID")
	}
	if t1 == in.Tuple([]TypeID{b.String, b.Int}) {
		t.Error("tuple element order matters")
	}

	if in.Tuple(nil) != b.Unit {
		t.Error("empty tuple is the unit type")
	}

	f1 := in.Fn([]TypeID{b.Int}, b.Int)
	f2 := in.Fn([]TypeID{b.Int}, b.Int)
	if f1 != f2 {
		t.Error("equal fn types must intern to the same ID")
	}
	if f1 == in.Fn([]TypeID{b.Int}, NoTypeID) {
		t.Error("return type participates in identity")
	}
}

func TestUnknownMatchesNothing(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Unknown == b.Int || b.Unknown == b.Unit {
		t.Fatal("Unknown must be distinct from every concrete type")
	}
}

func TestFormat(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	cases := []struct {
		id   TypeID
		want string
	}{
		{b.Int, "int"},
		{b.String, "String"},
		{b.Bool, "bool"},
		{b.Unit, "()"},
		{in.Tuple([]TypeID{b.Int, b.String}), "(int, String)"},
		{in.Fn([]TypeID{b.Int}, b.Int), "fn (int) -> int"},
		{in.Fn(nil, NoTypeID), "fn ()"},
		{b.Unknown, "<unknown>"},
		{NoTypeID, "<invalid>"},
	}
	for _, c := range cases {
		if got := in.Format(c.id); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestLookupAccessors(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if name, ok := in.Name(b.Int); !ok || name != "int" {
		t.Errorf("Name(int) = %q, %v", name, ok)
	}
	tup := in.Tuple([]TypeID{b.Int, b.Float})
	info, ok := in.TupleInfo(tup)
	if !ok || len(info.Elems) != 2 || info.Elems[0] != b.Int {
		t.Errorf("TupleInfo broken: %+v, %v", info, ok)
	}
	fn := in.Fn([]TypeID{b.Bool}, b.Unit)
	fi, ok := in.FnInfo(fn)
	if !ok || len(fi.Params) != 1 || fi.Ret != b.Unit {
		t.Errorf("FnInfo broken: %+v, %v", fi, ok)
	}
	if _, ok := in.Name(tup); ok {
		t.Error("Name on a tuple must report false")
	}
}
