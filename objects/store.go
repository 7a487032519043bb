package objects

import (
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/pbxproj/ir"
)

// Store is the reference graph over a project's objects map.  It indexes
// the records of the document tree it was built from and keeps that tree
// current as records are appended and removed.
//
// A Store supports a single writer.  Only NewReference may be called
// concurrently with other operations.
type Store struct {
	root    *ir.Node
	objects *ir.Node
	index   map[string]*Record
	refs    refGen
}

// FromRoot builds a store over root, which must be the root map of a
// project document.  A missing objects map is created.
func FromRoot(root *ir.Node) (*Store, error) {
	if root == nil || root.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: root is not a map", ErrMalformed)
	}
	objects := root.Get(ObjectsField)
	if objects == nil {
		objects = &ir.Node{Type: ir.ObjectType}
		root.Set(ObjectsField, objects)
	}
	if objects.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: %s is a %s", ErrMalformed, ObjectsField, objects.Type)
	}
	s := &Store{
		root:    root,
		objects: objects,
		index:   make(map[string]*Record, len(objects.Fields)),
	}
	for i, f := range objects.Fields {
		v := objects.Values[i]
		if v.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: object %s is a %s", ErrMalformed, f.String, v.Type)
		}
		s.index[f.String] = newRecord(f.String, v)
		s.refs.observe(f.String, true)
	}
	return s, nil
}

// Tree returns the root map the store operates on.
func (s *Store) Tree() *ir.Node {
	return s.root
}

func (s *Store) Len() int {
	return len(s.objects.Fields)
}

// Records returns the records in store order.
func (s *Store) Records() []*Record {
	return slices.Collect(s.All())
}

// All iterates the records in store order.
func (s *Store) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, f := range s.objects.Fields {
			r := s.index[f.String]
			if r == nil {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func (s *Store) Lookup(ref string) (*Record, error) {
	r := s.index[ref]
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return r, nil
}

// LookupTyped is Lookup constrained to the given kinds.
func (s *Store) LookupTyped(ref string, kinds ...Kind) (*Record, error) {
	r, err := s.Lookup(ref)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(kinds, r.Kind) {
		return nil, fmt.Errorf("%w: %s is a %s, want %v", ErrTypeMismatch, ref, r.Tag, kinds)
	}
	return r, nil
}

// NewRecord builds a record with a fresh reference.  The record is not
// part of the store until it is appended.
func (s *Store) NewRecord(tag string, kvs ...ir.KeyVal) *Record {
	node := ir.FromKeyVals(ir.KeyVal{Key: IsaField, Val: ir.FromString(tag)})
	for _, kv := range kvs {
		if kv.Key == IsaField {
			continue
		}
		node.Set(kv.Key, kv.Val)
	}
	return &Record{Ref: s.NewReference(), Kind: KindOf(tag), Tag: tag, Node: node}
}

// Append adds r at the end of the store.
func (s *Store) Append(r *Record) error {
	if r == nil || r.Node == nil || r.Node.Type != ir.ObjectType {
		return fmt.Errorf("%w: record is not a map", ErrMalformed)
	}
	if r.Ref == "" {
		return fmt.Errorf("%w: record has no reference", ErrMalformed)
	}
	if s.index[r.Ref] != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateReference, r.Ref)
	}
	if isa := r.Node.Get(IsaField); isa == nil {
		r.Node.Set(IsaField, ir.FromString(r.Tag))
	} else if isa.Type != ir.StringType || isa.String != r.Tag {
		return fmt.Errorf("%w: record %s tagged %s has isa %v", ErrImmutableTag, r.Ref, r.Tag, isa.String)
	}
	r.Kind = KindOf(r.Tag)
	s.objects.Set(r.Ref, r.Node)
	s.index[r.Ref] = r
	s.refs.observe(r.Ref, false)
	return nil
}

// Add creates and appends a record.
func (s *Store) Add(tag string, kvs ...ir.KeyVal) (*Record, error) {
	r := s.NewRecord(tag, kvs...)
	if err := s.Append(r); err != nil {
		return nil, err
	}
	return r, nil
}

// RootRef is the reference of the root record, or "".
func (s *Store) RootRef() string {
	v := s.root.Get(RootObjectField)
	if v == nil || v.Type != ir.StringType {
		return ""
	}
	return v.String
}

func (s *Store) Root() (*Record, error) {
	return s.Lookup(s.RootRef())
}

func (s *Store) SetRoot(ref string) error {
	if _, err := s.Lookup(ref); err != nil {
		return err
	}
	s.root.Set(RootObjectField, ir.FromString(ref))
	return nil
}

// Inbound maps each reference to the records holding it, in store order.
func (s *Store) Inbound() map[string][]*Record {
	res := map[string][]*Record{}
	for r := range s.All() {
		for _, ref := range r.References() {
			owners := res[ref]
			if len(owners) > 0 && owners[len(owners)-1] == r {
				continue
			}
			res[ref] = append(owners, r)
		}
	}
	return res
}

// Owners returns the records holding ref.
func (s *Store) Owners(ref string) []*Record {
	var res []*Record
	for r := range s.All() {
		if slices.Contains(r.References(), ref) {
			res = append(res, r)
		}
	}
	return res
}

// Dangling returns the records no reference path from the root reaches.
func (s *Store) Dangling() []*Record {
	seen := make(map[string]bool, len(s.index))
	queue := []string{s.RootRef()}
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		if seen[ref] {
			continue
		}
		r := s.index[ref]
		if r == nil {
			continue
		}
		seen[ref] = true
		queue = append(queue, r.References()...)
	}
	var res []*Record
	for r := range s.All() {
		if !seen[r.Ref] {
			res = append(res, r)
		}
	}
	return res
}

func (s *Store) detach(r *Record) {
	s.objects.Delete(r.Ref)
	delete(s.index, r.Ref)
}
