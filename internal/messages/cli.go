package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "manila-data-snap"
	// RootShort is the short description for the root command.
	RootShort            = "Lifecycle hooks and service runner for the manila-data snap"
	RootVersionFlag      = "Print version and exit"
	RootConfigFileFlag   = "Read options from a TOML file instead of snapctl"
	RootSnapEnvFailedFmt = "load snap environment: %w"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	InstallUse   = "install"
	InstallShort = "Run the install hook: create directories and render missing files"

	ConfigureUse   = "configure"
	ConfigureShort = "Run the configure hook: render missing files and start or restart services"

	RunUse   = "run <service>"
	RunShort = "Run a registered service in the foreground"

	ServicesUse     = "services"
	ServicesShort   = "List registered services and their command lines"
	ServicesLineFmt = "%s\t%s\n"

	DoctorFlagDiffMaxLines = "Maximum lines shown per rendered-file diff (0 for no limit)"
)
