// Package doctor inspects an installed snap and reports what the hooks would
// find: unset roots, missing directories, invalid configuration, and rendered
// files that no longer match the configuration.
package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
	// Detail is printed verbatim below the result, for example a unified diff.
	Detail string
}

// HasFailure reports whether any result failed. Warnings do not count.
func HasFailure(results []Result) bool {
	return hasStatus(results, StatusFail)
}

// HasWarning reports whether any result is a warning.
func HasWarning(results []Result) bool {
	return hasStatus(results, StatusWarn)
}

func hasStatus(results []Result, status Status) bool {
	for _, r := range results {
		if r.Status == status {
			return true
		}
	}
	return false
}
