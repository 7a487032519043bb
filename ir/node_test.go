package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetDelete(t *testing.T) {
	m := FromKeyVals(
		KeyVal{Key: "isa", Val: FromString("PBXGroup")},
		KeyVal{Key: "name", Val: FromString("Sources")},
		KeyVal{Key: "sourceTree", Val: FromString("<group>")},
	)
	m.Set("name", FromString("Other"))
	if got := m.Get("name").String; got != "Other" {
		t.Errorf("Get(name) = %q, want Other", got)
	}
	if !m.Delete("isa") {
		t.Fatalf("Delete(isa) reported absent")
	}
	if m.Delete("isa") {
		t.Errorf("second Delete(isa) reported present")
	}
	if diff := cmp.Diff([]string{"name", "sourceTree"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	for i, v := range m.Values {
		if v.ParentIndex != i || m.Fields[i].ParentIndex != i {
			t.Errorf("index %d not reindexed: %d/%d", i, v.ParentIndex, m.Fields[i].ParentIndex)
		}
	}
}

func TestPath(t *testing.T) {
	leaf := FromString("A")
	root := FromKeyVals(KeyVal{
		Key: "objects",
		Val: FromKeyVals(KeyVal{
			Key: "G",
			Val: FromKeyVals(KeyVal{Key: "children", Val: FromSlice([]*Node{FromString("B"), leaf})}),
		}),
	})
	p := leaf.Path()
	if got, want := p.String(), "/objects/G/children/1"; got != want {
		t.Errorf("path %q, want %q", got, want)
	}
	if !p.HasPrefix("objects", "*", "children") {
		t.Errorf("%s should have prefix objects/*/children", p)
	}
	if p.Is("objects", "*", "children") {
		t.Errorf("%s is not exactly objects/*/children", p)
	}
	if got := p.LastKey(); got != "children" {
		t.Errorf("LastKey = %q", got)
	}
	if root.Get("objects").Get("G").Path().String() != "/objects/G" {
		t.Errorf("bad record path")
	}
}

func TestPathWithIsImmutable(t *testing.T) {
	base := make(Path, 0, 8).Key("a")
	x := base.Key("x")
	y := base.Key("y")
	if x.String() != "/a/x" || y.String() != "/a/y" {
		t.Errorf("shared backing array: %s %s", x, y)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals(
		KeyVal{Key: "files", Val: FromStrings("A", "B")},
		KeyVal{Key: "n", Val: FromUint(3)},
	)
	c := orig.Clone()
	c.Get("files").RemoveAt(0)
	if got := orig.Get("files").Strings(); len(got) != 2 {
		t.Errorf("clone shares lists with original: %v", got)
	}
	if c.Get("n").Uint64 != 3 {
		t.Errorf("clone lost number")
	}
}

func TestJSON(t *testing.T) {
	n := FromKeyVals(
		KeyVal{Key: "z", Val: FromString("<group>")},
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromInt(-3), FromUint(4), FromFloat(2.5), Null(), FromBool(true)})},
	)
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":"<group>","a":[-3,4,2.5,null,true]}`
	if string(d) != want {
		t.Fatalf("json %s, want %s", d, want)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(n.Keys(), back.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	a := back.Get("a")
	wantTypes := []Type{IntType, UintType, FloatType, NullType, BoolType}
	for i, v := range a.Values {
		if v.Type != wantTypes[i] {
			t.Errorf("element %d: type %s, want %s", i, v.Type, wantTypes[i])
		}
	}
}

func TestFromJSONTrailing(t *testing.T) {
	if _, err := FromJSON([]byte(`{} {}`)); err == nil {
		t.Errorf("expected error for trailing data")
	}
}

func TestToAny(t *testing.T) {
	n := FromKeyVals(
		KeyVal{Key: "name", Val: FromString("App")},
		KeyVal{Key: "files", Val: FromStrings("A")},
		KeyVal{Key: "mask", Val: FromUint(2147483647)},
	)
	want := map[string]any{
		"name":  "App",
		"files": []any{"A"},
		"mask":  uint64(2147483647),
	}
	if diff := cmp.Diff(want, ToAny(n)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
