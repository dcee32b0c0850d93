// Package renderctx produces the namespaced mappings templates render against.
package renderctx

import (
	"fmt"
	"log/slog"

	"github.com/openstack-snaps/manila-data/internal/config"
	"github.com/openstack-snaps/manila-data/internal/messages"
	"github.com/openstack-snaps/manila-data/internal/snap"
)

// PathsNamespace is the namespace holding the snap path roots.
const PathsNamespace = "snap_paths"

// Provider contributes one namespace to the rendering context.
type Provider interface {
	Namespace() string
	Context() (map[string]any, error)
}

// PathProvider exposes every snap path slot as {slot_name: absolute_path}.
type PathProvider struct {
	paths snap.Paths
}

// NewPathProvider returns a provider for paths.
func NewPathProvider(paths snap.Paths) PathProvider {
	return PathProvider{paths: paths}
}

// Namespace returns PathsNamespace.
func (PathProvider) Namespace() string {
	return PathsNamespace
}

// Context returns one entry per path slot.
func (p PathProvider) Context() (map[string]any, error) {
	slots := p.paths.Slots()
	out := make(map[string]any, len(slots))
	for _, slot := range slots {
		out[slot.Name] = slot.Path
	}
	return out, nil
}

// ConfigProvider wraps one already-validated configuration section.
type ConfigProvider struct {
	namespace string
	data      map[string]any
}

// NewConfigProvider returns a provider serving data under namespace.
func NewConfigProvider(namespace string, data map[string]any) ConfigProvider {
	return ConfigProvider{namespace: namespace, data: data}
}

// Namespace returns the section name.
func (c ConfigProvider) Namespace() string {
	return c.namespace
}

// Context returns the section mapping unchanged.
func (c ConfigProvider) Context() (map[string]any, error) {
	return c.data, nil
}

// Providers returns the path provider followed by one provider per
// configuration section, in section declaration order.
func Providers(paths snap.Paths, values *config.Values) []Provider {
	providers := []Provider{NewPathProvider(paths)}
	if values == nil {
		return providers
	}
	for _, section := range values.Dump() {
		providers = append(providers, NewConfigProvider(section.Name, section.Data))
	}
	return providers
}

// Build merges providers into a single context keyed by namespace.
// Namespaces must be unique.
func Build(providers []Provider, logger *slog.Logger) (map[string]any, error) {
	out := make(map[string]any, len(providers))
	for _, provider := range providers {
		namespace := provider.Namespace()
		if _, exists := out[namespace]; exists {
			return nil, fmt.Errorf(messages.ContextDuplicateNamespaceFmt, namespace)
		}
		if logger != nil {
			logger.Debug(messages.ContextAdding, "namespace", namespace)
		}
		data, err := provider.Context()
		if err != nil {
			return nil, fmt.Errorf(messages.ContextProviderFailedFmt, namespace, err)
		}
		out[namespace] = data
	}
	return out, nil
}
