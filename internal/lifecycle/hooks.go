package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/openstack-snaps/manila-data/internal/config"
	"github.com/openstack-snaps/manila-data/internal/fsutil"
	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/render"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

const (
	// HookLogFile is the hook log, relative to the common root.
	HookLogFile = "hooks.log"
	// HookLockFile serializes hook runs, relative to the common root.
	HookLockFile = ".hooks.lock"

	installHook   = "install"
	configureHook = "configure"
)

// HookOptions configures a hook run.
type HookOptions struct {
	// Log configures the console side of hook logging.
	Log *log.Config
	// System overrides filesystem access for rendering.
	System render.System
	// LockTimeout bounds the wait for a concurrent hook; zero means fsutil.DefaultLockTimeout.
	LockTimeout time.Duration
}

// InstallHook runs the install hook: directories and templates only.
func InstallHook(ctx context.Context, s *snap.Snap, data ServiceData, opts HookOptions) error {
	return runHook(ctx, installHook, s, opts, func(logger *slog.Logger) error {
		return NewManager(s, data, Options{System: opts.System, Logger: logger}).Install(ctx)
	})
}

// ConfigureHook runs the configure hook. An incomplete or invalid configuration
// is logged as a warning and the hook succeeds without side effects.
func ConfigureHook(ctx context.Context, s *snap.Snap, data ServiceData, opts HookOptions) error {
	return runHook(ctx, configureHook, s, opts, func(logger *slog.Logger) error {
		err := NewManager(s, data, Options{System: opts.System, Logger: logger}).Configure(ctx)
		if errors.Is(err, config.ErrConfigValidation) {
			logger.Warn(messages.HookConfigPending, "error", err)
			return nil
		}
		return err
	})
}

func runHook(ctx context.Context, name string, s *snap.Snap, opts HookOptions, fn func(*slog.Logger) error) error {
	logger, closer, err := log.Setup(filepath.Join(s.Paths.Common, HookLogFile), opts.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	logger = log.WithCorrelationID(logger, uuid.NewString()).With(log.HookKey, name)

	lock := fsutil.HookLock{
		Path:    filepath.Join(s.Paths.Common, HookLockFile),
		Owner:   fmt.Sprintf(messages.LockOwnerFmt, name, os.Getpid()),
		Timeout: opts.LockTimeout,
		Logger:  logger,
	}
	return lock.Run(ctx, func() error {
		logger.Debug(messages.HookStarting)
		if err := fn(logger); err != nil {
			logger.Error(messages.HookFailed, "error", err)
			return err
		}
		logger.Debug(messages.HookFinished)
		return nil
	})
}
