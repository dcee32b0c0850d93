package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-snaps/manila-data/internal/layout"
)

func TestDriftStates(t *testing.T) {
	templates := fstest.MapFS{
		"current.conf": {Data: []byte("url = {{ .database.url }}")},
		"changed.conf": {Data: []byte("url = {{ .database.url }}")},
		"missing.conf": {Data: []byte("url = {{ .database.url }}")},
	}
	engine, roots := newTestEngine(t, RealSystem{}, templates)
	etc := filepath.Join(roots[layout.Common], "etc")
	require.NoError(t, os.MkdirAll(etc, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "current.conf"), []byte("url = new\n"), 0o640))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "changed.conf"), []byte("url = old\n"), 0o640))

	specs := []layout.Template{
		layout.CommonTemplate("current.conf", "etc"),
		layout.CommonTemplate("changed.conf", "etc"),
		layout.CommonTemplate("missing.conf", "etc"),
	}
	drifts, err := engine.Drift(staticSource(map[string]any{
		"database": map[string]any{"url": "new"},
	}), specs, 0)
	require.NoError(t, err)
	require.Len(t, drifts, 3)

	assert.Equal(t, DriftCurrent, drifts[0].State)
	assert.Equal(t, DriftChanged, drifts[1].State)
	assert.Contains(t, drifts[1].UnifiedDiff, "-url = old")
	assert.Contains(t, drifts[1].UnifiedDiff, "+url = new")
	assert.False(t, drifts[1].Truncated)
	assert.Equal(t, DriftMissing, drifts[2].State)
	assert.Equal(t, filepath.Join(etc, "missing.conf"), drifts[2].Path)

	_, err = os.Stat(filepath.Join(etc, "missing.conf"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "drift must not write files")
}

func TestDriftTruncatesDiff(t *testing.T) {
	templates := fstest.MapFS{"big.conf": {Data: []byte("a\nb\nc\nd\ne\nf\n")}}
	engine, roots := newTestEngine(t, RealSystem{}, templates)
	dest := filepath.Join(roots[layout.Common], "etc/big.conf")
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("1\n2\n3\n4\n5\n6\n"), 0o640))

	drifts, err := engine.Drift(staticSource(map[string]any{}), []layout.Template{layout.CommonTemplate("big.conf", "etc")}, 4)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.True(t, drifts[0].Truncated)
	assert.Len(t, strings.Split(strings.TrimSuffix(drifts[0].UnifiedDiff, "\n"), "\n"), 4)
}

func TestDriftReturnsContextError(t *testing.T) {
	engine, _ := newTestEngine(t, RealSystem{}, fstest.MapFS{})
	ctxErr := errors.New("no config")
	_, err := engine.Drift(func() (map[string]any, error) { return nil, ctxErr }, nil, 0)
	assert.ErrorIs(t, err, ctxErr)
}
