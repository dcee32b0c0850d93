package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

// CommandLine returns the argument vector for svc: the absolute executable
// under the snap root followed by ConfigFileFlag and the absolute path of each
// configuration file under the common root.
func CommandLine(svc Service, paths snap.Paths) []string {
	argv := make([]string, 0, 1+2*len(svc.ConfigurationFiles))
	argv = append(argv, filepath.Join(paths.Snap, svc.Executable))
	for _, file := range svc.ConfigurationFiles {
		argv = append(argv, ConfigFileFlag, filepath.Join(paths.Common, file))
	}
	return argv
}

// RunOptions wires the child's standard streams and logging.
type RunOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Run starts svc in the foreground, waits for it, and returns its exit code.
// A non-zero exit is not an error. A child killed by a signal reports 128+signal.
// The error is non-nil only when the child could not be started or waited on.
func Run(ctx context.Context, svc Service, paths snap.Paths, opts RunOptions) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	argv := CommandLine(svc, paths)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}
	cmd.Stdout = os.Stdout
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	cmd.Stderr = os.Stderr
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	logger.Info(messages.ServiceLaunching, "service", svc.Name, "argv", argv)
	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 1, fmt.Errorf(messages.ServiceStartFailedFmt, svc.Name, err)
		}
		code = exitCode(exitErr)
	}
	logger.Info(messages.ServiceExited, "service", svc.Name, "code", code)
	return code, nil
}

func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}
