// Package snap adapts the snapd runtime: named path roots, the snapctl
// configuration store, and the snap's service list.
package snap

import (
	"github.com/openstack-snaps/manila-data/internal/config"
)

// Snap is the runtime context handed to hooks and service entry points.
type Snap struct {
	Name     string
	Paths    Paths
	Config   config.Store
	Services ServiceLister
}

// FromEnv builds a Snap from the environment snapd provides to hooks and apps.
func FromEnv(sys System) (*Snap, error) {
	paths, err := PathsFromEnv(sys.LookupEnv)
	if err != nil {
		return nil, err
	}
	name, _ := sys.LookupEnv("SNAP_NAME")
	ctl := NewSnapctl(sys)
	return &Snap{
		Name:     name,
		Paths:    paths,
		Config:   ctl,
		Services: ctl,
	}, nil
}
