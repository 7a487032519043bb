package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/parse"
)

func TestEncodeDefaults(t *testing.T) {
	root := ir.FromKeyVals(
		ir.KeyVal{Key: "archiveVersion", Val: ir.FromUint(1)},
		ir.KeyVal{Key: "classes", Val: ir.FromKeyVals()},
		ir.KeyVal{Key: "list", Val: ir.FromStrings("a", "b c")},
		ir.KeyVal{Key: "empty", Val: ir.FromSlice(nil)},
		ir.KeyVal{Key: "nested", Val: ir.FromKeyVals(ir.KeyVal{Key: "x", Val: ir.FromInt(-2)})},
	)
	doc := ir.NewDocument(root)
	doc.Indent = "\t"
	got := MustString(doc)
	want := strings.TrimSpace(`// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	list = (
		a,
		"b c"
	);
	empty = (
	);
	nested = {
		x = -2;
	};
}`)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeTrailingCommas(t *testing.T) {
	doc := ir.NewDocument(ir.FromKeyVals(ir.KeyVal{Key: "l", Val: ir.FromStrings("a", "b")}))
	got := MustString(doc, TrailingCommas(true), Indent("  "))
	want := "// !$*UTF8*$!\n{\n  l = (\n    a,\n    b,\n  );\n}"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		v    *ir.Node
		want string
	}{
		{ir.FromString("plain"), "plain"},
		{ir.FromString(""), `""`},
		{ir.FromString("a b"), `"a b"`},
		{ir.FromString("$(SRCROOT)"), `"$(SRCROOT)"`},
		{ir.FromString("<group>"), `"<group>"`},
		{ir.FromString("-ObjC"), `"-ObjC"`},
		{ir.FromString("a::b"), `"a::b"`},
		{ir.FromString("x//y"), `"x//y"`},
		{ir.FromString("say \"hi\"\n"), `"say \"hi\"\n"`},
		{ir.FromString("Café"), `"Café"`},
		{ir.FromString("Sources/App.swift"), "Sources/App.swift"},
		{ir.FromBool(true), "true"},
		{ir.Null(), "null"},
		{ir.FromInt(-12), "-12"},
		{ir.FromUint(18446744073709551615), "18446744073709551615"},
		{ir.FromFloat(14.0), "14"},
		{ir.FromFloat(0.5), "0.5"},
		{ir.FromFloat(1e20), "1e+20"},
	}
	for _, tt := range tests {
		doc := ir.NewDocument(ir.FromKeyVals(ir.KeyVal{Key: "v", Val: tt.v}))
		got := MustString(doc)
		want := "// !$*UTF8*$!\n{\n v = " + tt.want + ";\n}"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  *ir.Document
		err  error
	}{
		{
			name: "nan",
			doc:  ir.NewDocument(ir.FromKeyVals(ir.KeyVal{Key: "v", Val: ir.FromFloat(math.NaN())})),
			err:  ErrNonFiniteNumber,
		},
		{
			name: "inf",
			doc:  ir.NewDocument(ir.FromKeyVals(ir.KeyVal{Key: "v", Val: ir.FromFloat(math.Inf(-1))})),
			err:  ErrNonFiniteNumber,
		},
		{
			name: "bad type",
			doc:  ir.NewDocument(ir.FromKeyVals(ir.KeyVal{Key: "v", Val: &ir.Node{Type: ir.Type(99)}})),
			err:  ErrUnencodableType,
		},
		{
			name: "scalar root",
			doc:  ir.NewDocument(ir.FromString("x")),
			err:  ErrUnencodableType,
		},
		{
			name: "unknown charset",
			doc:  &ir.Document{Encoding: "NOPE-42", Root: ir.FromKeyVals()},
			err:  ErrEncodingUnavailable,
		},
		{
			name: "unrepresentable",
			doc: &ir.Document{
				Encoding: "ISO-8859-1",
				Root:     ir.FromKeyVals(ir.KeyVal{Key: "v", Val: ir.FromString("日本")}),
			},
			err: ErrEncodingUnavailable,
		},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		err := Encode(tt.doc, buf)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: error %v, want %v", tt.name, err, tt.err)
		}
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: %v does not wrap ErrEncoding", tt.name, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: wrote %d bytes on failure", tt.name, buf.Len())
		}
	}
}

func TestEncodeCharset(t *testing.T) {
	doc := &ir.Document{
		Encoding: "ISO-8859-1",
		Indent:   "\t",
		Root:     ir.FromKeyVals(ir.KeyVal{Key: "name", Val: ir.FromString("Café")}),
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	want := "// !$*ISO-8859-1*$!\n{\n\tname = \"Caf\xe9\";\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	back, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if back.Root.Get("name").String != "Café" {
		t.Errorf("name came back as %q", back.Root.Get("name").String)
	}
}

// testPolicy annotates refs, keeps them unquoted, lays out maps named
// "inline" on one line and sections the "objects" map.
type testPolicy struct {
	nopPolicy
}

func (testPolicy) SingleLine(p ir.Path, _ *ir.Node) bool { return p.LastKey() == "inline" }
func (testPolicy) Escape(p ir.Path) bool                 { return p.LastKey() != "ref" }
func (testPolicy) EscapeKey(p ir.Path) bool              { return !p.HasPrefix("objects", "*") }
func (testPolicy) Sections(p ir.Path) bool               { return p.Is("objects") }

func (testPolicy) Comment(p ir.Path, v string) string {
	switch {
	case p.Is("objects", "*"):
		return "obj " + v
	case p.LastKey() == "ref" && v != "ref":
		return "to */ " + v
	}
	return ""
}

func TestEncodePolicy(t *testing.T) {
	rec := func(isa string) *ir.Node {
		return ir.FromKeyVals(ir.KeyVal{Key: "isa", Val: ir.FromString(isa)})
	}
	root := ir.FromKeyVals(
		ir.KeyVal{Key: "objects", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "A", Val: rec("One")},
			ir.KeyVal{Key: "B", Val: rec("Two")},
			ir.KeyVal{Key: "C", Val: rec("One")},
		)},
		ir.KeyVal{Key: "inline", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "ref", Val: ir.FromString("A-1")},
			ir.KeyVal{Key: "l", Val: ir.FromStrings("x", "y")},
		)},
		ir.KeyVal{Key: "ref", Val: ir.FromStrings("$odd", "has space")},
	)
	doc := ir.NewDocument(root)
	doc.Indent = "\t"
	got := MustString(doc, WithPolicy(testPolicy{}))
	want := strings.TrimSpace(`
// !$*UTF8*$!
{
	objects = {

/* Begin One section */
		A /* obj A */ = {
			isa = One;
		};
		C /* obj C */ = {
			isa = One;
		};
/* End One section */

/* Begin Two section */
		B /* obj B */ = {
			isa = Two;
		};
/* End Two section */
	};
	inline = {ref = A-1 /* to (*)/ A-1 */; l = (x, y); };
	ref = (
		$odd /* to (*)/ $odd */,
		"has space" /* to (*)/ has space */
	);
}`)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	back, err := parse.Parse([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	if diff := back.Root.Get("ref").Strings(); len(diff) != 2 || diff[1] != "has space" {
		t.Errorf("refs came back as %v", diff)
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	if got := c.Color(ir.Type(99), SepColor, "x%y"); got != "x%y" {
		t.Errorf("default color changed text: %q", got)
	}
	doc := ir.NewDocument(ir.FromKeyVals(ir.KeyVal{Key: "k", Val: ir.FromString("v")}))
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "k") {
		t.Errorf("colored output lost content: %q", buf.String())
	}
}

func TestEncodeIdempotent(t *testing.T) {
	in := "// !$*UTF8*$!\n{\n\tobjects = {\n\t\tA = {\n\t\t\tisa = X;\n\t\t\tl = (\n\t\t\t\t1,\n\t\t\t\t\"a b\",\n\t\t\t);\n\t\t};\n\t};\n}\n"
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	once := bytes.NewBuffer(nil)
	if err := Encode(doc, once); err != nil {
		t.Fatal(err)
	}
	if once.String() != in {
		t.Errorf("got\n%s\nwant\n%s", once, in)
	}
	doc2, err := parse.Parse(once.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	twice := bytes.NewBuffer(nil)
	if err := Encode(doc2, twice); err != nil {
		t.Fatal(err)
	}
	if once.String() != twice.String() {
		t.Errorf("not idempotent:\n%s\n%s", once, twice)
	}
}

func TestEncodeNode(t *testing.T) {
	n := ir.FromKeyVals(
		ir.KeyVal{Key: "isa", Val: ir.FromString("PBXGroup")},
		ir.KeyVal{Key: "children", Val: ir.FromStrings("A")},
	)
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(n, ir.Path{}.Key("objects").Key("G"), buf, Indent("\t")); err != nil {
		t.Fatal(err)
	}
	want := "{\n\tisa = PBXGroup;\n\tchildren = (\n\t\tA\n\t);\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestEncodeNumberLiterals(t *testing.T) {
	in := "// !$*UTF8*$!\n{\n\tx = 1.0e300;\n\ty = 2.50;\n\tz = 123456789012345678901e5;\n\tn = 007;\n\tm = -12;\n}\n"
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != in {
		t.Errorf("got %q\nwant %q", got, in)
	}

	doc.Root.Get("y").Float64 = 3
	doc.Root.Get("n").Uint64 = 8
	got := MustString(doc)
	for _, want := range []string{"y = 3;", "n = 8;", "x = 1.0e300;"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestEncodePathReferenceQuoted(t *testing.T) {
	tests := []struct {
		v, want string
	}{
		{"MyApp::Group", `"MyApp::Group"`},
		{"8E0000000000000000000001", "8E0000000000000000000001"},
		{`"already"`, `"already"`},
		{"a b", `"a b"`},
	}
	for _, tc := range tests {
		if got := quoteScalar(tc.v, false); got != tc.want {
			t.Errorf("quoteScalar(%q, false) = %s, want %s", tc.v, got, tc.want)
		}
	}
}
