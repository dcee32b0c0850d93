package lifecycle

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openstack-snaps/manila-data/internal/config"
	"github.com/openstack-snaps/manila-data/internal/layout"
	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/render"
	"github.com/openstack-snaps/manila-data/internal/renderctx"
	"github.com/openstack-snaps/manila-data/internal/services"
	"github.com/openstack-snaps/manila-data/internal/snap"
	"github.com/openstack-snaps/manila-data/internal/templates"
)

// OverrideTemplateDir is the operator template directory, relative to the common root.
const OverrideTemplateDir = "templates"

// Options configures a Manager.
type Options struct {
	System render.System
	Logger *slog.Logger
}

// Manager drives directory setup, rendering, and service control for one
// hook invocation. The configuration is read at most once per Manager.
type Manager struct {
	snap   *snap.Snap
	data   ServiceData
	sys    render.System
	logger *slog.Logger

	values    *config.Values
	providers []renderctx.Provider
}

// NewManager returns a Manager for s and data.
func NewManager(s *snap.Snap, data ServiceData, opts Options) *Manager {
	sys := opts.System
	if sys == nil {
		sys = render.RealSystem{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &Manager{snap: s, data: data, sys: sys, logger: logger}
}

// Install creates directories and renders templates. Services are left alone.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.SetupDirs(); err != nil {
		return err
	}
	_, err := m.Template(ctx)
	return err
}

// Configure validates the configuration, creates directories, renders
// templates, and then restarts or starts every snap service.
// An invalid configuration is returned before anything is touched.
func (m *Manager) Configure(ctx context.Context) error {
	if _, err := m.Config(ctx); err != nil {
		return err
	}
	if err := m.SetupDirs(); err != nil {
		return err
	}
	changed, err := m.Template(ctx)
	if err != nil {
		return err
	}
	return m.StartServices(ctx, changed)
}

// StartServices restarts every listed service when changed is non-empty and
// starts them otherwise.
func (m *Manager) StartServices(ctx context.Context, changed []layout.Template) error {
	controllers, err := m.snap.Services.List(ctx)
	if err != nil {
		return fmt.Errorf(messages.ServiceListFmt, err)
	}
	return services.Apply(ctx, m.logger, changed, controllers)
}

// Config loads and validates the snap configuration. A successful result is reused.
func (m *Manager) Config(ctx context.Context) (*config.Values, error) {
	if m.values != nil {
		return m.values, nil
	}
	schema, err := m.data.ConfigSchema()
	if err != nil {
		return nil, err
	}
	values, err := config.Load(ctx, m.snap.Config, schema)
	if err != nil {
		return nil, err
	}
	m.values = values
	return values, nil
}

// Providers returns the path provider followed by one provider per
// configuration section. A successful result is reused.
func (m *Manager) Providers(ctx context.Context) ([]renderctx.Provider, error) {
	if m.providers != nil {
		return m.providers, nil
	}
	values, err := m.Config(ctx)
	if err != nil {
		return nil, err
	}
	m.providers = renderctx.Providers(m.snap.Paths, values)
	return m.providers, nil
}

// RenderContext builds the namespaced rendering context.
func (m *Manager) RenderContext(ctx context.Context) (map[string]any, error) {
	providers, err := m.Providers(ctx)
	if err != nil {
		return nil, err
	}
	return renderctx.Build(providers, m.logger)
}

// SetupDirs creates every declared directory and applies its mode.
func (m *Manager) SetupDirs() error {
	roots := m.snap.Paths.Roots()
	for _, dir := range m.data.Directories() {
		path, err := roots.Resolve(dir.Location, dir.Path)
		if err != nil {
			return err
		}
		m.logger.Debug(messages.DirectoryCreating, "path", path)
		if err := m.sys.MkdirAll(path, dir.Mode); err != nil {
			return fmt.Errorf(messages.DirectoryCreateFmt, path, err)
		}
		if err := m.sys.Chmod(path, dir.Mode); err != nil {
			return fmt.Errorf(messages.DirectoryChmodFmt, path, err)
		}
	}
	return nil
}

// SearchPath returns the template roots in priority order: the operator
// override directory, the variant's extra directory, and the bundled templates.
// An extra directory that cannot be read is logged and skipped.
func (m *Manager) SearchPath() *render.SearchPath {
	roots := []fs.FS{os.DirFS(filepath.Join(m.snap.Paths.Common, OverrideTemplateDir))}
	if extra := m.data.TemplateDir(); extra != "" {
		if _, err := m.sys.Stat(extra); err != nil {
			m.logger.Error(messages.RenderExtraDirUnavailable, "path", extra, "error", err)
		} else {
			roots = append(roots, os.DirFS(extra))
		}
	}
	roots = append(roots, templates.FS())
	return render.NewSearchPath(roots...)
}

// Engine returns a render engine bound to the snap roots and SearchPath.
func (m *Manager) Engine() (*render.Engine, error) {
	return render.New(render.Options{
		System:     m.sys,
		Roots:      m.snap.Paths.Roots(),
		SearchPath: m.SearchPath(),
		Logger:     m.logger,
	})
}

// Template renders every template file whose destination is missing and
// returns those written. A context that cannot be built yields no writes.
func (m *Manager) Template(ctx context.Context) ([]layout.Template, error) {
	engine, err := m.Engine()
	if err != nil {
		return nil, err
	}
	return engine.Render(m.source(ctx), m.data.TemplateFiles())
}

// Drift compares every template file against what would be rendered now.
func (m *Manager) Drift(ctx context.Context, maxLines int) ([]render.Drift, error) {
	engine, err := m.Engine()
	if err != nil {
		return nil, err
	}
	return engine.Drift(m.source(ctx), m.data.TemplateFiles(), maxLines)
}

func (m *Manager) source(ctx context.Context) render.Source {
	return func() (map[string]any, error) {
		return m.RenderContext(ctx)
	}
}
