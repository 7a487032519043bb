package objects

import (
	"github.com/signadot/pbxproj/ir"
)

const (
	IsaField               = "isa"
	ObjectsField           = "objects"
	RootObjectField        = "rootObject"
	projectReferencesField = "projectReferences"
	targetAttributesField  = "TargetAttributes"
	attributesField        = "attributes"
)

// refFields hold a single reference.
var refFields = map[string]bool{
	"baseConfigurationReference": true,
	"buildConfigurationList":     true,
	"containerPortal":            true,
	"currentVersion":             true,
	"fileRef":                    true,
	"mainGroup":                  true,
	"package":                    true,
	"productRef":                 true,
	"productRefGroup":            true,
	"productReference":           true,
	"remoteGlobalIDString":       true,
	"remoteRef":                  true,
	"remoteReference":            true,
	"target":                     true,
	"targetProxy":                true,

	// inside projectReferences entries
	"ProductGroup": true,
	"ProjectRef":   true,
}

// refListFields hold a list of references.
var refListFields = map[string]bool{
	"buildConfigurations":          true,
	"buildPhases":                  true,
	"buildRules":                   true,
	"children":                     true,
	"dependencies":                 true,
	"exceptions":                   true,
	"fileSystemSynchronizedGroups": true,
	"files":                        true,
	"packageProductDependencies":   true,
	"packageReferences":            true,
	"targets":                      true,
}

func IsRefField(f string) bool     { return refFields[f] }
func IsRefListField(f string) bool { return refListFields[f] }

// IsRefPath reports whether p locates a value that holds a reference:
// the root object, a reference field of a record, an element of a
// reference list of a record, or a reference inside a project
// reference entry.
func IsRefPath(p ir.Path) bool {
	switch len(p) {
	case 1:
		return p.Is(RootObjectField)
	case 3:
		return p.HasPrefix(ObjectsField, "*", "*") && refFields[p[2].Key]
	case 4:
		return p.HasPrefix(ObjectsField, "*", "*") && p[3].IsIndex() && refListFields[p[2].Key]
	case 5:
		return p.HasPrefix(ObjectsField, "*", projectReferencesField) && p[3].IsIndex() &&
			!p[4].IsIndex() && refFields[p[4].Key]
	}
	return false
}

// IsRecordPath reports whether p locates a record in the objects map.
func IsRecordPath(p ir.Path) bool {
	return p.Is(ObjectsField, "*")
}
