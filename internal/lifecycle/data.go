// Package lifecycle runs the snap's install and configure hooks and its
// service entry points.
package lifecycle

import (
	"github.com/openstack-snaps/manila-data/internal/config"
	"github.com/openstack-snaps/manila-data/internal/layout"
)

// ManilaConfigDir holds the rendered service configuration, relative to the common root.
const ManilaConfigDir = "etc/manila"

// ServiceData describes what a service variant needs on disk.
type ServiceData interface {
	// Directories are created under their roots before templating.
	Directories() []layout.Directory
	// TemplateFiles are rendered in order.
	TemplateFiles() []layout.Template
	// ConfigSchema validates the snap configuration for this variant.
	ConfigSchema() (*config.Schema, error)
	// TemplateDir is an additional template root searched after the
	// operator override directory. Empty means none.
	TemplateDir() string
}

// Generic is the default manila-data variant.
type Generic struct {
	// ExtraTemplateDir is searched between the operator templates and the
	// bundled ones when set.
	ExtraTemplateDir string
}

// Directories returns etc/manila and lib/manila under the common root.
func (Generic) Directories() []layout.Directory {
	return []layout.Directory{
		layout.CommonDirectory(ManilaConfigDir),
		layout.CommonDirectory("lib/manila"),
	}
}

// TemplateFiles returns manila.conf and rootwrap.conf under etc/manila.
func (Generic) TemplateFiles() []layout.Template {
	return []layout.Template{
		layout.CommonTemplate("manila.conf", ManilaConfigDir),
		layout.CommonTemplate("rootwrap.conf", ManilaConfigDir),
	}
}

// ConfigSchema returns the default configuration schema.
func (Generic) ConfigSchema() (*config.Schema, error) {
	return config.NewConfigurationSchema()
}

// TemplateDir returns ExtraTemplateDir.
func (g Generic) TemplateDir() string {
	return g.ExtraTemplateDir
}
