package lifecycle

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/services"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

// ServiceLogFile returns the per-service log file name, relative to the common root.
func ServiceLogFile(svc services.Service, snapName string) string {
	return fmt.Sprintf("%s-%s.log", filepath.Base(svc.Executable), snapName)
}

// ServiceOptions configures RunService.
type ServiceOptions struct {
	Log *log.Config
	Run services.RunOptions
}

// RunService runs svc in the foreground with logging to its per-service log
// file and returns the child's exit code.
func RunService(ctx context.Context, s *snap.Snap, svc services.Service, opts ServiceOptions) (int, error) {
	logger, closer, err := log.Setup(filepath.Join(s.Paths.Common, ServiceLogFile(svc, s.Name)), opts.Log)
	if err != nil {
		return 1, err
	}
	defer func() {
		_ = closer.Close()
	}()
	runOpts := opts.Run
	runOpts.Logger = logger.With(log.ServiceKey, svc.Name)
	return services.Run(ctx, svc, s.Paths, runOpts)
}
