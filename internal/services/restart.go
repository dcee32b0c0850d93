package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/openstack-snaps/manila-data/internal/layout"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

// Apply restarts every controller when any template changed and starts every
// controller otherwise. Controllers are visited in name order; the first
// failure stops the pass.
func Apply(ctx context.Context, logger *slog.Logger, changed []layout.Template, controllers map[string]snap.Controller) error {
	names := make([]string, 0, len(controllers))
	for name := range controllers {
		names = append(names, name)
	}
	sort.Strings(names)

	restart := len(changed) > 0
	for _, name := range names {
		controller := controllers[name]
		if restart {
			logger.Debug(messages.ServiceRestarting, "service", name)
			if err := controller.Restart(ctx); err != nil {
				return fmt.Errorf(messages.ServiceControlFmt, "restart", name, err)
			}
			continue
		}
		logger.Debug(messages.ServiceStarting, "service", name)
		if err := controller.Start(ctx); err != nil {
			return fmt.Errorf(messages.ServiceControlFmt, "start", name, err)
		}
	}
	return nil
}
