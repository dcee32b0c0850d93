package messages

// System messages for logging setup, directory setup, and hook locking.
const (
	LogOpenFileFmt  = "open log file %s: %w"
	LogCreateDirFmt = "create log directory %s: %w"

	LockOpenFmt    = "open hook lock %s: %w"
	LockAcquireFmt = "lock %s: %w"
	LockTimeoutFmt = "timed out waiting for hook lock after %s"
	LockOwnerFmt   = "%s hook (pid %d)"
	LockWaiting    = "Waiting for hook lock"
	LockAcquired   = "Acquired hook lock"

	DirectoryCreateFmt = "failed to create directory %s: %w"
	DirectoryChmodFmt  = "failed to set mode on %s: %w"
	DirectoryCreating  = "Creating directory"

	HookConfigPending = "Configuration not complete"
	HookStarting      = "Running hook"
	HookFinished      = "Hook finished"
	HookFailed        = "Hook failed"
)
