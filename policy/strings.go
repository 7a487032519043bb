package policy

import (
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"
)

// stringTrees are record fields whose whole subtree holds text even
// when it looks numeric ("14.0", "1020").
var stringTrees = map[string]bool{
	"attributes":    true,
	"buildSettings": true,
	"requirement":   true,
	"settings":      true,
}

// textFields are record fields that always hold text for known kinds.
var textFields = map[string]bool{
	"name":        true,
	"path":        true,
	"productName": true,
	"remoteInfo":  true,
}

// ForceString reports whether an unquoted scalar at p must be read as a
// string instead of being classified.  root is the document parsed so
// far; records already carry their isa when their other fields are read.
func ForceString(p ir.Path, root *ir.Node) bool {
	if objects.IsRefPath(p) {
		return true
	}
	if len(p) < 3 || !p.HasPrefix(objects.ObjectsField, "*", "*") {
		return false
	}
	field := p[2].Key
	if len(p) > 3 {
		return stringTrees[field]
	}
	if field == "defaultConfigurationIsVisible" {
		return true
	}
	if !textFields[field] {
		return false
	}
	rec := root.Get(objects.ObjectsField).Get(p[1].Key)
	isa := rec.Get(objects.IsaField)
	return isa != nil && objects.KindOf(isa.String) != objects.KindUnknown
}
