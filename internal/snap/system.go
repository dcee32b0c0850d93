package snap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// System abstracts the OS operations the snap adapter needs.
// This interface is intentionally package-local so tests can fake snapctl
// without a snapd instance.
type System interface {
	LookupEnv(key string) (string, bool)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookupEnv returns the value and presence of an environment variable.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Output runs name with args and returns its standard output. On a non-zero
// exit the returned error is a *CommandError carrying standard error.
func (RealSystem) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &CommandError{Err: err, Stderr: bytes.TrimSpace(stderr.Bytes())}
		}
		return out, err
	}
	return out, nil
}

// CommandError is a failed command with its captured standard error.
type CommandError struct {
	Err    error
	Stderr []byte
}

// Error implements error.
func (e *CommandError) Error() string {
	if len(e.Stderr) == 0 {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + string(e.Stderr)
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
