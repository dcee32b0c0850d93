// Package fsutil holds small filesystem helpers shared by the hooks.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
)

// DefaultLockTimeout bounds how long a hook waits for another hook to finish.
const DefaultLockTimeout = 30 * time.Second

const defaultPollInterval = 100 * time.Millisecond

var flock = unix.Flock

// HookLock serializes hook runs through an advisory flock on Path.
// While held, the file contains Owner so a waiting hook can say who it is waiting on.
type HookLock struct {
	Path         string
	Owner        string
	Timeout      time.Duration
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Run blocks until the lock is held, ctx is done, or Timeout elapses, then runs fn.
func (l HookLock) Run(ctx context.Context, fn func() error) error {
	logger := l.Logger
	if logger == nil {
		logger = log.Discard()
	}
	file, err := os.OpenFile(l.Path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf(messages.LockOpenFmt, l.Path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	waited, err := l.acquire(ctx, file, logger)
	if err != nil {
		return fmt.Errorf(messages.LockAcquireFmt, l.Path, err)
	}
	defer func() {
		_ = file.Truncate(0)
		_ = flock(int(file.Fd()), unix.LOCK_UN)
	}()
	logger.Debug(messages.LockAcquired, "path", l.Path, "waited", waited)

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(l.Owner), 0)
	}
	return fn()
}

func (l HookLock) acquire(ctx context.Context, file *os.File, logger *slog.Logger) (time.Duration, error) {
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	poll := l.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	start := time.Now()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	announced := false
	for {
		err := flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return time.Since(start), nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return 0, err
		}
		if !announced {
			logger.Info(messages.LockWaiting, "path", l.Path, "holder", holder(l.Path))
			announced = true
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-deadline.C:
			return 0, fmt.Errorf(messages.LockTimeoutFmt, timeout)
		case <-ticker.C:
		}
	}
}

func holder(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
