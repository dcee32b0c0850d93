package messages

// Snap runtime messages for paths, snapctl, and service control.
const (
	SnapMissingEnvFmt       = "snap environment variable %s is not set"
	SnapLocationUnsetFmt    = "no root path configured for location %s"
	SnapctlFailedFmt        = "snapctl %s: %w"
	SnapctlInvalidOutputFmt = "snapctl %s returned invalid JSON: %w"
)
