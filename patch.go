package pbxproj

import (
	"fmt"

	"github.com/signadot/pbxproj/debug"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"

	jsonpatch "github.com/evanphx/json-patch"
)

// PatchRecord applies an RFC 6902 JSON patch to the record ref.  The
// patch sees the record as a JSON object; its isa cannot change.  Fields
// that survive keep their position and new fields are appended.
func (p *Project) PatchRecord(ref string, patch []byte) error {
	r, err := p.Objects.Lookup(ref)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decoding patch for %s: %w", ref, err)
	}
	d, err := r.Node.MarshalJSON()
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("patching %s: %w", r, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return err
	}
	if res.Type != ir.ObjectType {
		return fmt.Errorf("%w: patched %s is a %s", objects.ErrMalformed, r, res.Type)
	}
	if isa := res.Get(objects.IsaField); isa == nil || isa.Type != ir.StringType || isa.String != r.Tag {
		return fmt.Errorf("%w: %s", objects.ErrImmutableTag, r)
	}
	if debug.Patch() {
		debug.Logf("patch %s gave %v\n", r, res)
	}
	for _, k := range r.Node.Keys() {
		if res.Index(k) == -1 {
			r.Delete(k)
		}
	}
	for i, f := range res.Fields {
		if f.String == objects.IsaField {
			continue
		}
		if err := r.Set(f.String, res.Values[i]); err != nil {
			return err
		}
	}
	return nil
}
