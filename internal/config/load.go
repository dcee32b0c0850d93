package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

// Store is a key/value configuration source queried by top-level key names.
// Keys and returned mappings use the external kebab-case naming.
type Store interface {
	Options(ctx context.Context, keys ...string) (map[string]any, error)
}

// Load queries store for the schema's top-level keys and validates the result.
func Load(ctx context.Context, store Store, schema *Schema) (*Values, error) {
	if store == nil {
		return nil, errors.New(messages.ConfigStoreRequired)
	}
	if schema == nil {
		return nil, errors.New(messages.ConfigSchemaRequired)
	}
	raw, err := store.Options(ctx, schema.Keys()...)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigQueryStoreFmt, err)
	}
	return schema.Validate(raw)
}

// MapStore serves options from memory.
type MapStore map[string]any

// Options returns the requested top-level keys that are present.
func (m MapStore) Options(_ context.Context, keys ...string) (map[string]any, error) {
	return selectKeys(m, keys), nil
}

// FileStore serves options from a TOML document, for running hooks outside snapd.
type FileStore struct {
	Path string
}

// Options reads the TOML document and returns the requested top-level keys.
func (f FileStore) Options(_ context.Context, keys ...string) (map[string]any, error) {
	path, err := homedir.Expand(f.Path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigExpandPathFmt, f.Path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFileFmt, path, err)
	}
	return selectKeys(doc, keys), nil
}

func selectKeys(doc map[string]any, keys []string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if value, ok := doc[key]; ok {
			out[key] = value
		}
	}
	return out
}
