package objects

import (
	"github.com/signadot/pbxproj/debug"
	"github.com/signadot/pbxproj/ir"
)

// Remove deletes the record ref along with everything it owns, then
// removes references to the deleted records from the survivors.  It
// returns the removed references in removal order.  Removing an absent
// reference is a no-op.
func (s *Store) Remove(ref string) []string {
	c := &cascade{s: s, removed: map[string]bool{}}
	c.remove(ref, 0)
	if len(c.order) == 0 {
		return nil
	}
	s.scrub(c.removed)
	return c.order
}

type cascade struct {
	s       *Store
	removed map[string]bool
	order   []string
}

func (c *cascade) remove(ref string, depth int) {
	r := c.s.index[ref]
	if r == nil {
		return
	}
	if debug.Cascade() {
		debug.Logf("%*sremove %s\n", 2*depth, "", r)
	}
	c.s.detach(r)
	c.removed[ref] = true
	c.order = append(c.order, ref)
	for _, owned := range c.s.owned(r) {
		c.remove(owned, depth+1)
	}
}

// owned lists the records that go away with r.
func (s *Store) owned(r *Record) []string {
	switch r.Kind {
	case SourcesBuildPhase, FrameworksBuildPhase, ResourcesBuildPhase,
		HeadersBuildPhase, CopyFilesBuildPhase, ShellScriptBuildPhase,
		AppleScriptBuildPhase, RezBuildPhase:
		return s.exclusiveFiles(r)
	case NativeTarget, AggregateTarget, LegacyTarget:
		var res []string
		res = appendRef(res, r.Str("buildConfigurationList"))
		res = append(res, r.Refs("buildPhases")...)
		res = append(res, r.Refs("buildRules")...)
		res = append(res, r.Refs("dependencies")...)
		if r.Kind == NativeTarget {
			res = appendRef(res, r.Str("productReference"))
			res = append(res, r.Refs("packageProductDependencies")...)
		}
		res = append(res, s.referrers(TargetDependency, "target", r.Ref)...)
		return append(res, s.referrers(ContainerItemProxy, "remoteGlobalIDString", r.Ref)...)
	case Group, VariantGroup, VersionGroup:
		return r.Refs("children")
	case FileSystemSynchronizedRootGroup:
		return append(r.Refs("exceptions"), r.Refs("children")...)
	case FileReference:
		return s.referrers(BuildFile, "fileRef", r.Ref)
	case ReferenceProxy:
		return appendRef(s.referrers(BuildFile, "fileRef", r.Ref), r.Str("remoteRef"))
	case SwiftPackageProductDependency:
		return s.referrers(BuildFile, "productRef", r.Ref)
	case TargetDependency:
		return appendRef(nil, r.Str("targetProxy"))
	case ConfigurationList:
		return r.Refs("buildConfigurations")
	case Project:
		var res []string
		res = appendRef(res, r.Str("mainGroup"))
		res = appendRef(res, r.Str("buildConfigurationList"))
		res = append(res, r.Refs("targets")...)
		return append(res, r.Refs("packageReferences")...)
	case BuildFile, BuildRule, BuildConfiguration, ContainerItemProxy,
		RemoteSwiftPackageReference, LocalSwiftPackageReference,
		FileSystemSynchronizedBuildFileExceptionSet, KindUnknown:
		return nil
	}
	return nil
}

func appendRef(refs []string, ref string) []string {
	if ref == "" {
		return refs
	}
	return append(refs, ref)
}

// exclusiveFiles lists the build files of phase r that no other phase
// lists.
func (s *Store) exclusiveFiles(r *Record) []string {
	shared := map[string]bool{}
	for o := range s.All() {
		if o == r || !o.Kind.IsBuildPhase() {
			continue
		}
		for _, f := range o.Refs("files") {
			shared[f] = true
		}
	}
	var res []string
	for _, f := range r.Refs("files") {
		if !shared[f] {
			res = append(res, f)
		}
	}
	return res
}

// referrers returns the records of kind k whose field holds ref.
func (s *Store) referrers(k Kind, field, ref string) []string {
	var res []string
	for r := range s.All() {
		if r.Kind == k && r.Str(field) == ref {
			res = append(res, r.Ref)
		}
	}
	return res
}

// scrub drops removed references from the surviving records: list
// elements, single reference fields, project reference entries and
// target attributes.  Remote global ids name objects that may live in
// another project and are left alone.
func (s *Store) scrub(removed map[string]bool) {
	gone := func(ref string) bool { return removed[ref] }
	for r := range s.All() {
		n := r.Node
		for i := len(n.Fields) - 1; i >= 0; i-- {
			f := n.Fields[i].String
			v := n.Values[i]
			switch {
			case refListFields[f]:
				removeRefs(v, gone)
			case refFields[f] && f != "remoteGlobalIDString":
				if v.Type == ir.StringType && removed[v.String] {
					n.Delete(f)
				}
			case f == projectReferencesField && v.Type == ir.ArrayType:
				for j := len(v.Values) - 1; j >= 0; j-- {
					entry := v.Values[j]
					if pr := entry.Get("ProjectRef"); pr != nil && removed[pr.String] {
						v.RemoveAt(j)
					}
				}
			case f == attributesField && v.Type == ir.ObjectType:
				if ta := v.Get(targetAttributesField); ta != nil && ta.Type == ir.ObjectType {
					for _, k := range ta.Keys() {
						if removed[k] {
							ta.Delete(k)
						}
					}
				}
			}
		}
	}
}
