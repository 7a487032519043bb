package objects

import (
	"fmt"
	"path"

	"github.com/signadot/pbxproj/ir"
)

// Record is one entry of the objects map.  Node is the map node inside
// the document tree, so edits through a Record are edits to the tree.
type Record struct {
	Ref  string
	Kind Kind
	Tag  string
	Node *ir.Node
}

func newRecord(ref string, node *ir.Node) *Record {
	tag := ""
	if isa := node.Get(IsaField); isa != nil && isa.Type == ir.StringType {
		tag = isa.String
	}
	return &Record{Ref: ref, Kind: KindOf(tag), Tag: tag, Node: node}
}

func (r *Record) Get(field string) *ir.Node {
	return r.Node.Get(field)
}

// Str returns the string value of field, or "".
func (r *Record) Str(field string) string {
	v := r.Node.Get(field)
	if v == nil || v.Type != ir.StringType {
		return ""
	}
	return v.String
}

// Set stores v under field.  The isa field cannot change.
func (r *Record) Set(field string, v *ir.Node) error {
	if field == IsaField {
		return fmt.Errorf("%w: %s %s", ErrImmutableTag, r.Tag, r.Ref)
	}
	r.Node.Set(field, v)
	return nil
}

func (r *Record) SetString(field, v string) error {
	return r.Set(field, ir.FromString(v))
}

// Delete removes field.  The isa field cannot be removed.
func (r *Record) Delete(field string) bool {
	if field == IsaField {
		return false
	}
	return r.Node.Delete(field)
}

// Refs returns the elements of a reference list field.
func (r *Record) Refs(field string) []string {
	return r.Node.Get(field).Strings()
}

// AddRef appends ref to the list field, creating the list if needed.
func (r *Record) AddRef(field, ref string) {
	l := r.Node.Get(field)
	if l == nil || l.Type != ir.ArrayType {
		l = &ir.Node{Type: ir.ArrayType}
		r.Node.Set(field, l)
	}
	l.Append(ir.FromString(ref))
}

// RemoveRef drops every occurrence of ref from the list field.
func (r *Record) RemoveRef(field, ref string) bool {
	return removeRefs(r.Node.Get(field), func(s string) bool { return s == ref })
}

func removeRefs(l *ir.Node, drop func(string) bool) bool {
	if l == nil || l.Type != ir.ArrayType {
		return false
	}
	found := false
	for i := len(l.Values) - 1; i >= 0; i-- {
		v := l.Values[i]
		if v.Type == ir.StringType && drop(v.String) {
			l.RemoveAt(i)
			found = true
		}
	}
	return found
}

// Name is the display name of file elements, targets and configurations:
// the name field, else the last component of path.
func (r *Record) Name() string {
	if n := r.Str("name"); n != "" {
		return n
	}
	if p := r.Str("path"); p != "" {
		return path.Base(p)
	}
	return ""
}

// References lists every reference held by r, in field order.
func (r *Record) References() []string {
	var res []string
	for i, f := range r.Node.Fields {
		v := r.Node.Values[i]
		switch {
		case refFields[f.String] && v.Type == ir.StringType:
			res = append(res, v.String)
		case refListFields[f.String]:
			res = append(res, v.Strings()...)
		case f.String == projectReferencesField && v.Type == ir.ArrayType:
			for _, entry := range v.Values {
				if entry.Type != ir.ObjectType {
					continue
				}
				for j, ef := range entry.Fields {
					ev := entry.Values[j]
					if refFields[ef.String] && ev.Type == ir.StringType {
						res = append(res, ev.String)
					}
				}
			}
		}
	}
	return res
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %s", r.Tag, r.Ref)
}
