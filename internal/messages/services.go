package messages

// Service messages for the registry, restart decision, and runner.
const (
	ServiceNameRequired          = "service name is required"
	ServiceExecutableRequiredFmt = "service %s: executable is required"
	ServiceDuplicateFmt          = "service %s is already registered"
	ServiceUnknownFmt            = "unknown service %q (registered: %s)"
	ServiceStartFailedFmt        = "failed to start %s: %w"
	ServiceListFmt               = "list services: %w"
	ServiceControlFmt            = "%s service %s: %w"

	ServiceRestarting = "Restarting service"
	ServiceStarting   = "Starting service"
	ServiceLaunching  = "Launching service"
	ServiceExited     = "Exiting with code"
)
