package policy

import (
	"slices"

	"github.com/signadot/pbxproj/objects"
)

// Declared field lists.  Families share a base list that kinds extend;
// each list is kept in the IDE's sort order.
var (
	fileElementKeys = []string{"name", "path", "sourceTree"}
	groupKeys       = extend(fileElementKeys, "children", "indentWidth", "tabWidth", "usesTabs", "wrapsLines")
	buildPhaseKeys  = []string{"buildActionMask", "files", "name", "runOnlyForDeploymentPostprocessing"}
	targetKeys      = []string{"buildConfigurationList", "buildPhases", "buildRules", "dependencies", "name", "productName"}

	fileReferenceKeys = extend(fileElementKeys,
		"explicitFileType", "fileEncoding", "includeInIndex", "indentWidth",
		"lastKnownFileType", "lineEnding", "plistStructureDefinitionIdentifier",
		"tabWidth", "usesTabs", "wrapsLines", "xcLanguageSpecificationIdentifier")
	shellScriptKeys = extend(buildPhaseKeys,
		"alwaysOutOfDate", "dependencyFile", "inputFileListPaths", "inputPaths",
		"outputFileListPaths", "outputPaths", "shellPath", "shellScript", "showEnvVarsInLog")
	nativeTargetKeys = extend(targetKeys,
		"fileSystemSynchronizedGroups", "packageProductDependencies",
		"productInstallPath", "productReference", "productType")
	legacyTargetKeys = extend(targetKeys,
		"buildArgumentsString", "buildToolPath", "buildWorkingDirectory",
		"passBuildSettingsInEnvironment")
	buildRuleKeys = []string{"compilerSpec", "dependencyFile", "filePatterns", "fileType",
		"inputFiles", "isEditable", "name", "outputFiles", "outputFilesCompilerFlags",
		"runOncePerArchitecture", "script"}
	projectKeys = []string{"attributes", "buildConfigurationList", "compatibilityVersion",
		"developmentRegion", "hasScannedForEncodings", "knownRegions", "mainGroup",
		"minimizedProjectReferenceProxies", "packageReferences", "preferredProjectObjectVersion",
		"productRefGroup", "projectDirPath", "projectReferences", "projectRoot", "targets"}

	declaredKeys = map[objects.Kind][]string{
		objects.FileReference:                   fileReferenceKeys,
		objects.Group:                           groupKeys,
		objects.VariantGroup:                    groupKeys,
		objects.VersionGroup:                    extend(groupKeys, "currentVersion", "versionGroupType"),
		objects.FileSystemSynchronizedRootGroup: extend(fileElementKeys, "exceptions", "explicitFileTypes", "explicitFolders"),
		objects.ReferenceProxy:                  extend(fileElementKeys, "fileType", "remoteRef"),

		objects.SourcesBuildPhase:     buildPhaseKeys,
		objects.FrameworksBuildPhase:  buildPhaseKeys,
		objects.ResourcesBuildPhase:   buildPhaseKeys,
		objects.HeadersBuildPhase:     buildPhaseKeys,
		objects.RezBuildPhase:         buildPhaseKeys,
		objects.AppleScriptBuildPhase: extend(buildPhaseKeys, "contextName", "isSharedContext"),
		objects.CopyFilesBuildPhase:   extend(buildPhaseKeys, "dstPath", "dstSubfolderSpec"),
		objects.ShellScriptBuildPhase: shellScriptKeys,

		objects.NativeTarget:    nativeTargetKeys,
		objects.AggregateTarget: targetKeys,
		objects.LegacyTarget:    legacyTargetKeys,

		objects.BuildFile:          {"fileRef", "platformFilter", "platformFilters", "productRef", "settings"},
		objects.BuildRule:          buildRuleKeys,
		objects.ContainerItemProxy: {"containerPortal", "proxyType", "remoteGlobalIDString", "remoteInfo"},
		objects.TargetDependency:   {"name", "platformFilter", "productRef", "target", "targetProxy"},
		objects.BuildConfiguration: {"baseConfigurationReference", "buildSettings", "name"},
		objects.ConfigurationList:  {"buildConfigurations", "defaultConfigurationIsVisible", "defaultConfigurationName"},
		objects.Project:            projectKeys,

		objects.RemoteSwiftPackageReference:                 {"repositoryURL", "requirement"},
		objects.LocalSwiftPackageReference:                  {"relativePath"},
		objects.SwiftPackageProductDependency:               {"package", "productName"},
		objects.FileSystemSynchronizedBuildFileExceptionSet: {"membershipExceptions", "target"},
	}
)

// extend returns base plus keys, in sort order.
func extend(base []string, keys ...string) []string {
	res := make([]string, 0, len(base)+len(keys))
	res = append(res, base...)
	res = append(res, keys...)
	slices.Sort(res)
	return slices.Compact(res)
}

// DeclaredKeys returns the declared field list of k, isa excluded.
func DeclaredKeys(k objects.Kind) []string {
	return declaredKeys[k]
}
