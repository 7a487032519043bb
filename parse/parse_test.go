package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/token"
)

const small = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		B1 /* main.swift in Sources */ = {isa = PBXBuildFile; fileRef = F1 /* main.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		F1 /* main.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = main.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		G1 = {
			isa = PBXGroup;
			children = (
				F1 /* main.swift */,
			);
			sourceTree = "<group>";
		};
/* End PBXGroup section */
	};
	rootObject = P1 /* Project object */;
}
`

func TestParseOK(t *testing.T) {
	doc, err := Parse([]byte(small))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Encoding != "UTF8" {
		t.Errorf("encoding %q", doc.Encoding)
	}
	if doc.Indent != "\t" {
		t.Errorf("indent %q", doc.Indent)
	}
	if !doc.TrailingCommas {
		t.Errorf("trailing commas not detected")
	}
	root := doc.Root
	if diff := cmp.Diff([]string{"archiveVersion", "classes", "objectVersion", "objects", "rootObject"}, root.Keys()); diff != "" {
		t.Errorf("root keys (-want +got):\n%s", diff)
	}
	if v := root.Get("archiveVersion"); v.Type != ir.UintType || v.Uint64 != 1 {
		t.Errorf("archiveVersion %s %d", v.Type, v.Uint64)
	}
	if v := root.Get("classes"); v.Type != ir.ObjectType || len(v.Fields) != 0 {
		t.Errorf("classes should be an empty map")
	}
	objs := root.Get("objects")
	if diff := cmp.Diff([]string{"B1", "F1", "G1"}, objs.Keys()); diff != "" {
		t.Errorf("object keys (-want +got):\n%s", diff)
	}
	if got := objs.Get("F1").Get("sourceTree").String; got != "<group>" {
		t.Errorf("sourceTree %q", got)
	}
	if diff := cmp.Diff([]string{"F1"}, objs.Get("G1").Get("children").Strings()); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if got := root.Get("rootObject"); got.Type != ir.StringType || got.String != "P1" {
		t.Errorf("rootObject %v", got)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		typ  ir.Type
		want string
	}{
		{in: `a`, typ: ir.StringType, want: "a"},
		{in: `"a b"`, typ: ir.StringType, want: "a b"},
		{in: `"1"`, typ: ir.StringType, want: "1"},
		{in: `"x\ty\n\"z\"\\"`, typ: ir.StringType, want: "x\ty\n\"z\"\\"},
		{in: `"a\qb"`, typ: ir.StringType, want: `a\qb`},
		{in: `-3`, typ: ir.IntType, want: "-3"},
		{in: `42`, typ: ir.UintType, want: "42"},
		{in: `2.5`, typ: ir.FloatType, want: "2.5"},
		{in: `true`, typ: ir.BoolType},
		{in: `null`, typ: ir.NullType},
		{in: `1.0e10`, typ: ir.FloatType, want: "1.0e10"},
		{in: `sourcecode.swift`, typ: ir.StringType, want: "sourcecode.swift"},
		{in: `"$(SRCROOT)/x"`, typ: ir.StringType, want: "$(SRCROOT)/x"},
	}
	for _, tt := range tests {
		in := tt.in
		doc, err := Parse([]byte("// !$*UTF8*$!\n{\n v = " + in + ";\n}\n"))
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		v := doc.Root.Get("v")
		if v.Type != tt.typ {
			t.Errorf("%s: type %s, want %s", in, v.Type, tt.typ)
			continue
		}
		var got string
		switch v.Type {
		case ir.StringType:
			got = v.String
		case ir.IntType, ir.UintType, ir.FloatType:
			got = v.Number
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", in, got, tt.want)
		}
	}
}

func TestParseForcedStrings(t *testing.T) {
	in := `// !$*UTF8*$!
{
 objects = {
  C1 = {
   isa = XCBuildConfiguration;
   buildSettings = {
    SWIFT_VERSION = 5.0;
    IPHONEOS_DEPLOYMENT_TARGET = 17.0;
    TARGETED_DEVICE_FAMILY = 1;
   };
   name = 1234;
  };
  X1 = {
   isa = SomethingNew;
   name = 1234;
  };
 };
 rootObject = 0123;
}
`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	objs := doc.Root.Get("objects")
	bs := objs.Get("C1").Get("buildSettings")
	for _, k := range bs.Keys() {
		if v := bs.Get(k); v.Type != ir.StringType {
			t.Errorf("buildSettings/%s: type %s", k, v.Type)
		}
	}
	if v := bs.Get("SWIFT_VERSION").String; v != "5.0" {
		t.Errorf("SWIFT_VERSION %q", v)
	}
	if v := objs.Get("C1").Get("name"); v.Type != ir.StringType {
		t.Errorf("name of known record should be text, got %s", v.Type)
	}
	if v := objs.Get("X1").Get("name"); v.Type != ir.UintType {
		t.Errorf("name of unknown record should be classified, got %s", v.Type)
	}
	if v := doc.Root.Get("rootObject"); v.Type != ir.StringType || v.String != "0123" {
		t.Errorf("rootObject %s %q", v.Type, v.String)
	}
}

func TestParseStyle(t *testing.T) {
	in := `// !$*UTF8*$!
{
    a = (
        x,
        y
    );
    b = (p q);
    objects = {
        C = {isa = XCConfigurationList; /* Build configuration list for PBXProject "Demo" */ };
    };
}
`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Indent != "    " {
		t.Errorf("indent %q", doc.Indent)
	}
	if doc.TrailingCommas {
		t.Errorf("trailing commas reported for comma separated lists")
	}
	if doc.ProjectName != "Demo" {
		t.Errorf("project name %q", doc.ProjectName)
	}
	if diff := cmp.Diff([]string{"p", "q"}, doc.Root.Get("b").Strings()); diff != "" {
		t.Errorf("whitespace separated list (-want +got):\n%s", diff)
	}
}

func TestParseNestedComments(t *testing.T) {
	in := "// !$*UTF8*$!\n{ /* outer /* inner */ still outer */ a = b; }\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root.Get("a").String != "b" {
		t.Errorf("a = %v", doc.Root.Get("a"))
	}
}

func TestParseCharset(t *testing.T) {
	body := []byte("// !$*ISO-8859-1*$!\n{\n name = \"Caf\xe9\";\n}\n")
	doc, err := Parse(body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Encoding != "ISO-8859-1" {
		t.Errorf("encoding %q", doc.Encoding)
	}
	if got := doc.Root.Get("name").String; got != "Café" {
		t.Errorf("name %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
	}{
		{name: "no header", in: "{\n}\n", err: ErrMalformedHeader, line: 1},
		{name: "empty header", in: "// !$**$!\n{}\n", err: ErrMalformedHeader, line: 1},
		{name: "unknown charset", in: "// !$*NOPE-42*$!\n{}\n", err: ErrUnresolvableEncoding},
		{name: "bad utf8", in: "// !$*UTF8*$!\n{ a = \"\xff\"; }\n", err: ErrUndecodableBytes},
		{name: "open comment", in: "// !$*UTF8*$!\n{\n /* a = b;\n}\n", err: ErrUnterminatedComment, line: 3},
		{name: "missing semicolon", in: "// !$*UTF8*$!\n{\n a = b\n}\n", err: ErrMissingTerminator, line: 4},
		{name: "missing equals", in: "// !$*UTF8*$!\n{\n a b;\n}\n", err: ErrMissingTerminator, line: 3},
		{name: "unclosed map", in: "// !$*UTF8*$!\n{\n a = b;\n", err: ErrMissingTerminator, line: 2},
		{name: "unclosed list", in: "// !$*UTF8*$!\n{\n a = (b, c;\n}\n", err: ErrUnparsableValue, line: 3},
		{name: "bad key", in: "// !$*UTF8*$!\n{\n = b;\n}\n", err: ErrUnparsableKey, line: 3},
		{name: "bad value", in: "// !$*UTF8*$!\n{\n a = ;\n}\n", err: ErrUnparsableValue, line: 3},
		{name: "unterminated string", in: "// !$*UTF8*$!\n{\n a = \"b;\n}\n", err: ErrMissingTerminator, line: 3},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: error %v, want %v", tt.name, err, tt.err)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%s: %v does not wrap ErrParse", tt.name, err)
		}
		if tt.line == 0 {
			continue
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%s: %T is not a positional error", tt.name, err)
			continue
		}
		if l, _ := pe.LineCol(); l != tt.line {
			t.Errorf("%s: line %d, want %d (%v)", tt.name, l, tt.line, err)
		}
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	doc, err := Parse([]byte("// !$*UTF8*$!\n{\n a = b;\n c = (d);\n}\n"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	d := doc.Root.Get("c").Values[0]
	p := pos[d]
	if p == nil {
		t.Fatal("no position recorded")
	}
	if l, c := p.LineCol(); l != 4 || c != 7 {
		t.Errorf("position %d:%d, want 4:7", l, c)
	}
}
