package ir

import (
	"strconv"
	"strings"
)

// Seg is one step of a Path: a map key, or a list index when Index >= 0.
type Seg struct {
	Key   string
	Index int
}

func KeySeg(k string) Seg   { return Seg{Key: k, Index: -1} }
func IndexSeg(i int) Seg    { return Seg{Index: i} }
func (s Seg) IsIndex() bool { return s.Index >= 0 }

func (s Seg) String() string {
	if s.IsIndex() {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Path locates a node from the document root.  Paths are treated as
// immutable: With always returns a fresh slice.
type Path []Seg

func (p Path) With(s Seg) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = s
	return res
}

func (p Path) Key(k string) Path { return p.With(KeySeg(k)) }
func (p Path) Idx(i int) Path    { return p.With(IndexSeg(i)) }

// Last returns the final segment, or a zero Seg with Index -1 when empty.
func (p Path) Last() Seg {
	if len(p) == 0 {
		return Seg{Index: -1}
	}
	return p[len(p)-1]
}

// LastKey returns the nearest map key at or above the end of the path,
// skipping list indices.
func (p Path) LastKey() string {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsIndex() {
			return p[i].Key
		}
	}
	return ""
}

// Is reports whether p consists exactly of the given keys.  A "*"
// matches any single map key.
func (p Path) Is(keys ...string) bool {
	if len(p) != len(keys) {
		return false
	}
	return p.HasPrefix(keys...)
}

// HasPrefix is like Is but allows p to continue past keys.
func (p Path) HasPrefix(keys ...string) bool {
	if len(p) < len(keys) {
		return false
	}
	for i, k := range keys {
		if p[i].IsIndex() {
			return false
		}
		if k != "*" && p[i].Key != k {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// Path computes the location of y from its root via parent links.
func (y *Node) Path() Path {
	if y.Parent == nil {
		return Path{}
	}
	p := y.Parent.Path()
	switch y.Parent.Type {
	case ObjectType:
		return p.Key(y.ParentField)
	default:
		return p.Idx(y.ParentIndex)
	}
}
