package policy

import (
	"slices"

	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"
)

// Table answers the encoder's layout questions for one store.  It
// snapshots the store's inbound references when built, so build a new
// Table after mutating the store.
type Table struct {
	store       *objects.Store
	inbound     map[string][]*objects.Record
	projectName string
}

type Option func(*Table)

// ProjectName sets the name used to label the project configuration
// list.
func ProjectName(name string) Option {
	return func(t *Table) { t.projectName = name }
}

func New(store *objects.Store, opts ...Option) *Table {
	t := &Table{
		store:   store,
		inbound: store.Inbound(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) record(p ir.Path) *objects.Record {
	if len(p) < 2 || !p.HasPrefix(objects.ObjectsField, "*") {
		return nil
	}
	r, _ := t.store.Lookup(p[1].Key)
	return r
}

// KeyOrder orders the keys of map n found at p.  Records put isa first,
// then their declared fields, then any other field alphabetically.  The
// objects map keeps store order.  Other maps sort alphabetically.
func (t *Table) KeyOrder(p ir.Path, n *ir.Node) []int {
	idx := make([]int, len(n.Fields))
	for i := range idx {
		idx[i] = i
	}
	if p.Is(objects.ObjectsField) {
		return idx
	}
	if !objects.IsRecordPath(p) {
		slices.SortStableFunc(idx, func(a, b int) int {
			return compareKeys(n.Fields[a].String, n.Fields[b].String)
		})
		return idx
	}
	var declared []string
	if r := t.record(p); r != nil {
		declared = declaredKeys[r.Kind]
	}
	rank := func(k string) int {
		if k == objects.IsaField {
			return -1
		}
		if i := slices.Index(declared, k); i != -1 {
			return i
		}
		return len(declared)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		ka, kb := n.Fields[a].String, n.Fields[b].String
		ra, rb := rank(ka), rank(kb)
		if ra != rb {
			return ra - rb
		}
		return compareKeys(ka, kb)
	})
	return idx
}

func compareKeys(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SingleLine reports whether the map at p renders on one line.  File
// references and build files do, and so does everything inside them.
func (t *Table) SingleLine(p ir.Path, n *ir.Node) bool {
	if len(p) < 2 {
		return false
	}
	r := t.record(p)
	if r == nil {
		return false
	}
	switch r.Kind {
	case objects.FileReference, objects.BuildFile:
		return true
	default:
		return false
	}
}

// Escape reports whether a string at p is subject to quoting.  Values
// that hold references never are.
func (t *Table) Escape(p ir.Path) bool {
	return !objects.IsRefPath(p)
}

// EscapeKey is Escape for the key under which the value at p is stored.
func (t *Table) EscapeKey(p ir.Path) bool {
	return !objects.IsRecordPath(p)
}

// Sections reports whether the map at p is grouped into isa sections.
func (t *Table) Sections(p ir.Path) bool {
	return p.Is(objects.ObjectsField)
}
