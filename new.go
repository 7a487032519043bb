package pbxproj

import (
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"
)

const (
	archiveVersion = 1
	objectVersion  = 56
)

// New returns an empty project named name: a project record with a main
// group, a products group and Debug and Release configurations.
func New(name string) (*Project, error) {
	root := ir.FromKeyVals(
		ir.KeyVal{Key: "archiveVersion", Val: ir.FromUint(archiveVersion)},
		ir.KeyVal{Key: "classes", Val: ir.FromKeyVals()},
		ir.KeyVal{Key: "objectVersion", Val: ir.FromUint(objectVersion)},
		ir.KeyVal{Key: objects.ObjectsField, Val: ir.FromKeyVals()},
	)
	doc := ir.NewDocument(root)
	doc.Indent = "\t"
	doc.TrailingCommas = true
	doc.ProjectName = name
	p, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}
	s := p.Objects
	group := ir.FromString("<group>")
	products, err := s.Add(objects.Group.Tag(),
		ir.KeyVal{Key: "children", Val: ir.FromStrings()},
		ir.KeyVal{Key: "name", Val: ir.FromString("Products")},
		ir.KeyVal{Key: "sourceTree", Val: group.Clone()},
	)
	if err != nil {
		return nil, err
	}
	main, err := s.Add(objects.Group.Tag(),
		ir.KeyVal{Key: "children", Val: ir.FromStrings(products.Ref)},
		ir.KeyVal{Key: "sourceTree", Val: group.Clone()},
	)
	if err != nil {
		return nil, err
	}
	var configs []string
	for _, c := range []string{"Debug", "Release"} {
		r, err := s.Add(objects.BuildConfiguration.Tag(),
			ir.KeyVal{Key: "buildSettings", Val: ir.FromKeyVals()},
			ir.KeyVal{Key: "name", Val: ir.FromString(c)},
		)
		if err != nil {
			return nil, err
		}
		configs = append(configs, r.Ref)
	}
	list, err := s.Add(objects.ConfigurationList.Tag(),
		ir.KeyVal{Key: "buildConfigurations", Val: ir.FromStrings(configs...)},
		ir.KeyVal{Key: "defaultConfigurationIsVisible", Val: ir.FromString("0")},
		ir.KeyVal{Key: "defaultConfigurationName", Val: ir.FromString("Release")},
	)
	if err != nil {
		return nil, err
	}
	proj, err := s.Add(objects.Project.Tag(),
		ir.KeyVal{Key: "attributes", Val: ir.FromKeyVals()},
		ir.KeyVal{Key: "buildConfigurationList", Val: ir.FromString(list.Ref)},
		ir.KeyVal{Key: "developmentRegion", Val: ir.FromString("en")},
		ir.KeyVal{Key: "hasScannedForEncodings", Val: ir.FromUint(0)},
		ir.KeyVal{Key: "knownRegions", Val: ir.FromStrings("en", "Base")},
		ir.KeyVal{Key: "mainGroup", Val: ir.FromString(main.Ref)},
		ir.KeyVal{Key: "productRefGroup", Val: ir.FromString(products.Ref)},
		ir.KeyVal{Key: "projectDirPath", Val: ir.FromString("")},
		ir.KeyVal{Key: "projectRoot", Val: ir.FromString("")},
		ir.KeyVal{Key: "targets", Val: ir.FromStrings()},
	)
	if err != nil {
		return nil, err
	}
	if err := s.SetRoot(proj.Ref); err != nil {
		return nil, err
	}
	return p, nil
}
