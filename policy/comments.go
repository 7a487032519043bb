package policy

import (
	"fmt"
	"path"
	"strings"

	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"
)

var phaseLabels = map[objects.Kind]string{
	objects.SourcesBuildPhase:     "Sources",
	objects.FrameworksBuildPhase:  "Frameworks",
	objects.ResourcesBuildPhase:   "Resources",
	objects.HeadersBuildPhase:     "Headers",
	objects.CopyFilesBuildPhase:   "CopyFiles",
	objects.ShellScriptBuildPhase: "ShellScript",
	objects.AppleScriptBuildPhase: "AppleScript",
	objects.RezBuildPhase:         "Rez",
}

const projectLabel = "Project object"

// Comment returns the annotation for the string v found at p, or "".
// Object keys and reference values are annotated with the label of the
// record they name.
func (t *Table) Comment(p ir.Path, v string) string {
	switch {
	case objects.IsRecordPath(p):
		return t.Label(v)
	case objects.IsRefPath(p):
		if p.LastKey() == "remoteGlobalIDString" {
			return ""
		}
		return t.Label(v)
	}
	return ""
}

// Label derives the human readable name of the record ref.
func (t *Table) Label(ref string) string {
	r, err := t.store.Lookup(ref)
	if err != nil {
		return ""
	}
	switch r.Kind {
	case objects.FileReference, objects.Group, objects.VariantGroup,
		objects.VersionGroup, objects.ReferenceProxy,
		objects.FileSystemSynchronizedRootGroup, objects.KindUnknown:
		return r.Name()
	case objects.BuildFile:
		return t.buildFileLabel(r)
	case objects.SourcesBuildPhase, objects.FrameworksBuildPhase,
		objects.ResourcesBuildPhase, objects.HeadersBuildPhase,
		objects.CopyFilesBuildPhase, objects.ShellScriptBuildPhase,
		objects.AppleScriptBuildPhase, objects.RezBuildPhase:
		if n := r.Str("name"); n != "" {
			return n
		}
		return phaseLabels[r.Kind]
	case objects.NativeTarget, objects.AggregateTarget, objects.LegacyTarget,
		objects.BuildConfiguration:
		return r.Str("name")
	case objects.Project:
		return projectLabel
	case objects.ConfigurationList:
		return t.configListLabel(r)
	case objects.ContainerItemProxy, objects.TargetDependency, objects.BuildRule:
		return r.Tag
	case objects.SwiftPackageProductDependency:
		return r.Str("productName")
	case objects.RemoteSwiftPackageReference:
		name := strings.TrimSuffix(path.Base(r.Str("repositoryURL")), ".git")
		return fmt.Sprintf(`%s "%s"`, r.Tag, name)
	case objects.LocalSwiftPackageReference:
		return fmt.Sprintf(`%s "%s"`, r.Tag, r.Str("relativePath"))
	case objects.FileSystemSynchronizedBuildFileExceptionSet:
		return t.exceptionSetLabel(r)
	}
	return ""
}

func (t *Table) owner(ref string, match func(*objects.Record) bool) *objects.Record {
	for _, o := range t.inbound[ref] {
		if match(o) {
			return o
		}
	}
	return nil
}

// buildFileLabel is "<file> in <phase>".
func (t *Table) buildFileLabel(r *objects.Record) string {
	file := ""
	if ref := r.Str("fileRef"); ref != "" {
		file = t.Label(ref)
	} else if ref := r.Str("productRef"); ref != "" {
		file = t.Label(ref)
	}
	if file == "" {
		file = "(null)"
	}
	phase := t.owner(r.Ref, func(o *objects.Record) bool { return o.Kind.IsBuildPhase() })
	if phase == nil {
		return file
	}
	return file + " in " + t.Label(phase.Ref)
}

func (t *Table) configListLabel(r *objects.Record) string {
	const prefix = "Build configuration list for "
	o := t.owner(r.Ref, func(o *objects.Record) bool {
		return (o.Kind.IsTarget() || o.Kind == objects.Project) &&
			o.Str("buildConfigurationList") == r.Ref
	})
	switch {
	case o == nil:
		return "Build configuration list"
	case o.Kind == objects.Project && t.projectName == "":
		return prefix + o.Tag
	case o.Kind == objects.Project:
		return fmt.Sprintf(`%s%s "%s"`, prefix, o.Tag, t.projectName)
	default:
		return fmt.Sprintf(`%s%s "%s"`, prefix, o.Tag, o.Str("name"))
	}
}

func (t *Table) exceptionSetLabel(r *objects.Record) string {
	group := t.owner(r.Ref, func(o *objects.Record) bool { return o.Kind == objects.FileSystemSynchronizedRootGroup })
	folder := ""
	if group != nil {
		folder = group.Name()
	}
	return fmt.Sprintf(`Exceptions for "%s" folder in "%s" target`, folder, t.Label(r.Str("target")))
}
