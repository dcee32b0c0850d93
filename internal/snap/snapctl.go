package snap

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

const snapctlBinary = "snapctl"

// Controller is a managed service that can be started and restarted.
type Controller interface {
	Start(ctx context.Context) error
	Restart(ctx context.Context) error
}

// ServiceLister enumerates the snap's controllable services by app name.
type ServiceLister interface {
	List(ctx context.Context) (map[string]Controller, error)
}

// Snapctl talks to snapd from inside a hook or app through the snapctl tool.
type Snapctl struct {
	sys System
}

// NewSnapctl returns a Snapctl backed by sys.
func NewSnapctl(sys System) *Snapctl {
	return &Snapctl{sys: sys}
}

func (s *Snapctl) run(ctx context.Context, args ...string) ([]byte, error) {
	out, err := s.sys.Output(ctx, snapctlBinary, args...)
	if err != nil {
		return nil, fmt.Errorf(messages.SnapctlFailedFmt, strings.Join(args, " "), err)
	}
	return out, nil
}

// Options implements config.Store using `snapctl get -d`.
func (s *Snapctl) Options(ctx context.Context, keys ...string) (map[string]any, error) {
	args := append([]string{"get", "-d"}, keys...)
	out, err := s.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	options := map[string]any{}
	if len(bytes.TrimSpace(out)) == 0 {
		return options, nil
	}
	if err := json.Unmarshal(out, &options); err != nil {
		return nil, fmt.Errorf(messages.SnapctlInvalidOutputFmt, strings.Join(args, " "), err)
	}
	return options, nil
}

// List implements ServiceLister by parsing `snapctl services`. The returned
// map is keyed by app name (the part after "<snap>.").
func (s *Snapctl) List(ctx context.Context) (map[string]Controller, error) {
	out, err := s.run(ctx, "services")
	if err != nil {
		return nil, err
	}
	return parseServices(out, s), nil
}

// parseServices reads the tabular `snapctl services` output:
//
//	Service                  Startup  Current   Notes
//	manila-data.manila-data  enabled  inactive  -
func parseServices(out []byte, ctl *Snapctl) map[string]Controller {
	services := map[string]Controller{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	header := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if header {
			header = false
			if fields[0] == "Service" {
				continue
			}
		}
		full := fields[0]
		app := full
		if _, after, ok := strings.Cut(full, "."); ok {
			app = after
		}
		services[app] = &Service{ctl: ctl, name: full}
	}
	return services
}

// Service is a snap app controlled through snapctl.
type Service struct {
	ctl  *Snapctl
	name string
}

// Name returns the fully qualified "<snap>.<app>" name.
func (s *Service) Name() string {
	return s.name
}

// Start starts the service if it is not running.
func (s *Service) Start(ctx context.Context) error {
	_, err := s.ctl.run(ctx, "start", s.name)
	return err
}

// Restart restarts the service.
func (s *Service) Restart(ctx context.Context) error {
	_, err := s.ctl.run(ctx, "restart", s.name)
	return err
}
