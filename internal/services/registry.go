// Package services describes the OpenStack daemons a snap manages, decides
// whether they restart after templating, and runs one in the foreground.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

// ConfigFileFlag precedes each configuration file on the daemon command line.
const ConfigFileFlag = "--config-file"

// Service describes one daemon.
type Service struct {
	// Name is the snap app name.
	Name string
	// Executable is relative to the snap install root.
	Executable string
	// ConfigurationFiles are relative to the common root, passed in order.
	ConfigurationFiles []string
}

// ManilaDataService describes the manila-data daemon.
func ManilaDataService() Service {
	return Service{
		Name:       "manila-data",
		Executable: "usr/bin/manila-data",
		ConfigurationFiles: []string{
			"etc/manila/manila.conf",
			"etc/manila/rootwrap.conf",
		},
	}
}

// Registry is the fixed set of services known to the binary.
// It is populated once at startup and not modified afterward.
type Registry struct {
	services []Service
	byName   map[string]int
}

// NewRegistry validates and registers services in the given order.
func NewRegistry(services ...Service) (*Registry, error) {
	r := &Registry{byName: make(map[string]int, len(services))}
	for _, svc := range services {
		if strings.TrimSpace(svc.Name) == "" {
			return nil, errors.New(messages.ServiceNameRequired)
		}
		if strings.TrimSpace(svc.Executable) == "" {
			return nil, fmt.Errorf(messages.ServiceExecutableRequiredFmt, svc.Name)
		}
		if _, exists := r.byName[svc.Name]; exists {
			return nil, fmt.Errorf(messages.ServiceDuplicateFmt, svc.Name)
		}
		r.byName[svc.Name] = len(r.services)
		r.services = append(r.services, svc)
	}
	return r, nil
}

// DefaultRegistry returns the registry for this snap.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(ManilaDataService())
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the named service.
func (r *Registry) Lookup(name string) (Service, error) {
	idx, ok := r.byName[name]
	if !ok {
		return Service{}, fmt.Errorf(messages.ServiceUnknownFmt, name, strings.Join(r.Names(), ", "))
	}
	return r.services[idx], nil
}

// All returns every service in registration order.
func (r *Registry) All() []Service {
	out := make([]Service, len(r.services))
	copy(out, r.services)
	return out
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.services))
	for _, svc := range r.services {
		names = append(names, svc.Name)
	}
	sort.Strings(names)
	return names
}
