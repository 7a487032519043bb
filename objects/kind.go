package objects

// Kind is the closed set of record kinds.  Records whose tag is not
// listed decode as KindUnknown and keep their tag verbatim.
type Kind int

const (
	KindUnknown Kind = iota
	AggregateTarget
	AppleScriptBuildPhase
	BuildConfiguration
	BuildFile
	BuildRule
	ConfigurationList
	ContainerItemProxy
	CopyFilesBuildPhase
	FileReference
	FileSystemSynchronizedBuildFileExceptionSet
	FileSystemSynchronizedRootGroup
	FrameworksBuildPhase
	Group
	HeadersBuildPhase
	LegacyTarget
	LocalSwiftPackageReference
	NativeTarget
	Project
	ReferenceProxy
	RemoteSwiftPackageReference
	ResourcesBuildPhase
	RezBuildPhase
	ShellScriptBuildPhase
	SourcesBuildPhase
	SwiftPackageProductDependency
	TargetDependency
	VariantGroup
	VersionGroup

	numKinds
)

var kindTags = [numKinds]string{
	KindUnknown:                   "",
	AggregateTarget:               "PBXAggregateTarget",
	AppleScriptBuildPhase:         "PBXAppleScriptBuildPhase",
	BuildConfiguration:            "XCBuildConfiguration",
	BuildFile:                     "PBXBuildFile",
	BuildRule:                     "PBXBuildRule",
	ConfigurationList:             "XCConfigurationList",
	ContainerItemProxy:            "PBXContainerItemProxy",
	CopyFilesBuildPhase:           "PBXCopyFilesBuildPhase",
	FileReference:                 "PBXFileReference",
	FrameworksBuildPhase:          "PBXFrameworksBuildPhase",
	Group:                         "PBXGroup",
	HeadersBuildPhase:             "PBXHeadersBuildPhase",
	LegacyTarget:                  "PBXLegacyTarget",
	LocalSwiftPackageReference:    "XCLocalSwiftPackageReference",
	NativeTarget:                  "PBXNativeTarget",
	Project:                       "PBXProject",
	ReferenceProxy:                "PBXReferenceProxy",
	RemoteSwiftPackageReference:   "XCRemoteSwiftPackageReference",
	ResourcesBuildPhase:           "PBXResourcesBuildPhase",
	RezBuildPhase:                 "PBXRezBuildPhase",
	ShellScriptBuildPhase:         "PBXShellScriptBuildPhase",
	SourcesBuildPhase:             "PBXSourcesBuildPhase",
	SwiftPackageProductDependency: "XCSwiftPackageProductDependency",
	TargetDependency:              "PBXTargetDependency",
	VariantGroup:                  "PBXVariantGroup",
	VersionGroup:                  "XCVersionGroup",

	FileSystemSynchronizedBuildFileExceptionSet: "PBXFileSystemSynchronizedBuildFileExceptionSet",
	FileSystemSynchronizedRootGroup:             "PBXFileSystemSynchronizedRootGroup",
}

var tagKinds = func() map[string]Kind {
	res := make(map[string]Kind, numKinds)
	for k := Kind(1); k < numKinds; k++ {
		res[kindTags[k]] = k
	}
	return res
}()

// KindOf maps a tag to its kind.
func KindOf(tag string) Kind {
	return tagKinds[tag]
}

// Kinds returns every known kind.
func Kinds() []Kind {
	res := make([]Kind, 0, numKinds-1)
	for k := Kind(1); k < numKinds; k++ {
		res = append(res, k)
	}
	return res
}

// Tag is the isa value written for k.
func (k Kind) Tag() string {
	if k < 0 || k >= numKinds {
		return ""
	}
	return kindTags[k]
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "<unknown kind>"
	}
	return k.Tag()
}

func (k Kind) IsBuildPhase() bool {
	switch k {
	case SourcesBuildPhase, FrameworksBuildPhase, ResourcesBuildPhase,
		HeadersBuildPhase, CopyFilesBuildPhase, ShellScriptBuildPhase,
		AppleScriptBuildPhase, RezBuildPhase:
		return true
	default:
		return false
	}
}

func (k Kind) IsTarget() bool {
	switch k {
	case NativeTarget, AggregateTarget, LegacyTarget:
		return true
	default:
		return false
	}
}

func (k Kind) IsGroup() bool {
	switch k {
	case Group, VariantGroup, VersionGroup, FileSystemSynchronizedRootGroup:
		return true
	default:
		return false
	}
}

// IsFileElement reports kinds that can sit in a group's children.
func (k Kind) IsFileElement() bool {
	return k == FileReference || k == ReferenceProxy || k.IsGroup()
}

var (
	BuildPhases  = []Kind{SourcesBuildPhase, FrameworksBuildPhase, ResourcesBuildPhase, HeadersBuildPhase, CopyFilesBuildPhase, ShellScriptBuildPhase, AppleScriptBuildPhase, RezBuildPhase}
	Targets      = []Kind{NativeTarget, AggregateTarget, LegacyTarget}
	Groups       = []Kind{Group, VariantGroup, VersionGroup, FileSystemSynchronizedRootGroup}
	FileElements = append([]Kind{FileReference, ReferenceProxy}, Groups...)
)
