package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is what pbx writes: the project file syntax itself, or the
// object tree as JSON or YAML.
type Format int

const (
	PBXProjFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// ProjectFile is the name of the project file inside an .xcodeproj bundle.
const ProjectFile = "project.pbxproj"

var names = map[string]Format{
	"p":         PBXProjFormat,
	"pbx":       PBXProjFormat,
	"pbxproj":   PBXProjFormat,
	"xcodeproj": PBXProjFormat,
	"j":         JSONFormat,
	"json":      JSONFormat,
	"y":         YAMLFormat,
	"yml":       YAMLFormat,
	"yaml":      YAMLFormat,
}

// ParseFormat accepts a format name or one of its short forms, in any
// case.
func ParseFormat(v string) (Format, error) {
	if f, ok := names[strings.ToLower(v)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format of a file from its extension.  Bundles
// and files without a known extension are project files.
func FromPath(p string) Format {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if ext == "" {
		return PBXProjFormat
	}
	if f, ok := names[strings.ToLower(ext)]; ok {
		return f
	}
	return PBXProjFormat
}

// ResolveProject maps an .xcodeproj bundle path to the project file
// inside it.  Other paths are returned unchanged.
func ResolveProject(p string) string {
	if strings.EqualFold(filepath.Ext(strings.TrimSuffix(p, "/")), ".xcodeproj") {
		return filepath.Join(p, ProjectFile)
	}
	return p
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PBXProjFormat:
		return []byte("pbxproj"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsPBXProj() bool { return f == PBXProjFormat }
func (f Format) IsJSON() bool    { return f == JSONFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case PBXProjFormat:
		return ".pbxproj"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

func AllFormats() []Format {
	return []Format{PBXProjFormat, JSONFormat, YAMLFormat}
}
