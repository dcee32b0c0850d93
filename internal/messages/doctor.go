package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check snap paths, directories, configuration, and rendered files"

	DoctorHealthCheckFmt = "Checking %s in %s...\n"

	DoctorCheckNamePaths       = "Paths"
	DoctorCheckNameDirectories = "Dirs"
	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameTemplates   = "Templates"

	DoctorPathUnsetFmt         = "Snap root %s is not set"
	DoctorPathUnsetRecommend   = "Run inside the snap environment or export SNAP, SNAP_COMMON, and SNAP_DATA."
	DoctorPathMissingFmt       = "Snap root %s does not exist: %s"
	DoctorPathMissingRecommend = "Install the snap or point the root at an existing directory."
	DoctorPathOKFmt            = "Snap root %s: %s"

	DoctorMissingDirFmt       = "Missing directory: %s"
	DoctorMissingDirRecommend = "Run the install or configure hook to create it."
	DoctorPathNotDirFmt       = "%s exists but is not a directory"
	DoctorPathNotDirRecommend = "Remove the file and run the configure hook again."
	DoctorDirModeFmt          = "%s has mode %04o, expected %04o"
	DoctorDirModeRecommend    = "Run the configure hook again to reset directory permissions."
	DoctorDirStatFailedFmt    = "Failed to inspect %s: %v"
	DoctorDirExistsFmt        = "Directory exists: %s"
	DoctorDirResolveFailedFmt = "Failed to resolve directory %s: %v"

	DoctorConfigLoadFailedFmt    = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend    = "Check that snapctl is reachable or that --config-file points at a readable TOML file."
	DoctorConfigInvalid          = "Configuration is incomplete or invalid"
	DoctorConfigInvalidRecommend = "Set the missing options with `snap set`; the configure hook renders nothing until they are valid."
	DoctorConfigLoaded           = "Configuration loaded successfully"

	DoctorTemplateSkipped          = "Template checks skipped because the configuration is not valid"
	DoctorTemplateFailedFmt        = "Failed to render templates: %v"
	DoctorTemplateFailedRecommend  = "Check the template override directory for syntax errors or unknown keys."
	DoctorTemplateCurrentFmt       = "Rendered file is current: %s"
	DoctorTemplateMissingFmt       = "Rendered file is missing: %s"
	DoctorTemplateMissingRecommend = "Run the configure hook to render it."
	DoctorTemplateChangedFmt       = "Rendered file differs from the current configuration: %s"
	DoctorTemplateChangedRecommend = "Rendered files are never rewritten. Remove the file and run the configure hook again to pick up the new configuration."
	DoctorTemplateDiffTruncatedFmt = "... diff truncated to %d lines"

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorWarningSummary = "All checks passed with warnings. Review the items above."
	DoctorSuccessSummary = "All checks passed."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       > "
	DoctorRecommendationIndent = "         "
	DoctorDetailIndent         = "         "
)
