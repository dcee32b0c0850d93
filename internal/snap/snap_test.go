package snap

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-snaps/manila-data/internal/layout"
)

type fakeSystem struct {
	env     map[string]string
	outputs map[string][]byte
	errs    map[string]error
	calls   []string
}

func (f *fakeSystem) LookupEnv(key string) (string, bool) {
	value, ok := f.env[key]
	return value, ok
}

func (f *fakeSystem) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, call)
	if err := f.errs[call]; err != nil {
		return nil, err
	}
	return f.outputs[call], nil
}

func snapEnv() map[string]string {
	return map[string]string{
		"SNAP":             "/snap/manila-data/x1",
		"SNAP_COMMON":      "/var/snap/manila-data/common",
		"SNAP_DATA":        "/var/snap/manila-data/x1",
		"SNAP_NAME":        "manila-data",
		"SNAP_REAL_HOME":   "/root",
		"SNAP_USER_COMMON": "/root/snap/manila-data/common",
		"SNAP_USER_DATA":   "/root/snap/manila-data/x1",
	}
}

func TestFromEnv(t *testing.T) {
	sys := &fakeSystem{env: snapEnv()}
	s, err := FromEnv(sys)
	require.NoError(t, err)

	assert.Equal(t, "manila-data", s.Name)
	assert.Equal(t, "/var/snap/manila-data/common", s.Paths.Common)
	assert.Equal(t, "/snap/manila-data/x1", s.Paths.Snap)
	assert.Equal(t, "/root/snap/manila-data/x1", s.Paths.UserData)
	assert.NotNil(t, s.Config)
	assert.NotNil(t, s.Services)
}

func TestPathsFromEnvRequiresCoreRoots(t *testing.T) {
	for _, key := range []string{"SNAP", "SNAP_COMMON", "SNAP_DATA"} {
		t.Run(key, func(t *testing.T) {
			env := snapEnv()
			delete(env, key)
			_, err := PathsFromEnv((&fakeSystem{env: env}).LookupEnv)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}

	env := snapEnv()
	delete(env, "SNAP_USER_DATA")
	delete(env, "SNAP_REAL_HOME")
	paths, err := PathsFromEnv((&fakeSystem{env: env}).LookupEnv)
	require.NoError(t, err)
	assert.Empty(t, paths.UserData)
}

func TestPathsSlotsAndRoots(t *testing.T) {
	paths, err := PathsFromEnv((&fakeSystem{env: snapEnv()}).LookupEnv)
	require.NoError(t, err)

	names := []string{}
	for _, slot := range paths.Slots() {
		names = append(names, slot.Name)
	}
	assert.Equal(t, []string{"common", "data", "real_home", "snap", "user_common", "user_data"}, names)

	roots := paths.Roots()
	assert.Equal(t, paths.Common, roots[layout.Common])
	assert.Equal(t, paths.Data, roots[layout.Data])
}

func TestSnapctlOptions(t *testing.T) {
	sys := &fakeSystem{outputs: map[string][]byte{
		"snapctl get -d settings database": []byte(`{"database": {"url": "foo"}, "settings": {"debug": true}}`),
	}}
	options, err := NewSnapctl(sys).Options(context.Background(), "settings", "database")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"database": map[string]any{"url": "foo"},
		"settings": map[string]any{"debug": true},
	}, options)
}

func TestSnapctlOptionsEmptyAndInvalid(t *testing.T) {
	sys := &fakeSystem{outputs: map[string][]byte{
		"snapctl get -d database": []byte("\n"),
		"snapctl get -d rabbitmq": []byte("not json"),
	}}
	ctl := NewSnapctl(sys)

	options, err := ctl.Options(context.Background(), "database")
	require.NoError(t, err)
	assert.Empty(t, options)

	_, err = ctl.Options(context.Background(), "rabbitmq")
	assert.Error(t, err)
}

func TestSnapctlOptionsCommandFailure(t *testing.T) {
	cmdErr := &CommandError{Err: errors.New("exit status 1"), Stderr: []byte("cannot use snapctl outside a hook")}
	sys := &fakeSystem{errs: map[string]error{"snapctl get -d database": cmdErr}}

	_, err := NewSnapctl(sys).Options(context.Background(), "database")
	require.Error(t, err)
	assert.ErrorIs(t, err, cmdErr)
	assert.Contains(t, err.Error(), "cannot use snapctl outside a hook")
}

func TestSnapctlServices(t *testing.T) {
	sys := &fakeSystem{outputs: map[string][]byte{
		"snapctl services": []byte("Service                  Startup  Current   Notes\n" +
			"manila-data.manila-data  enabled  inactive  -\n" +
			"manila-data.other        disabled inactive  -\n\n"),
	}}
	ctl := NewSnapctl(sys)

	services, err := ctl.List(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)

	svc, ok := services["manila-data"].(*Service)
	require.True(t, ok)
	assert.Equal(t, "manila-data.manila-data", svc.Name())

	require.NoError(t, svc.Start(context.Background()))
	require.NoError(t, services["other"].Restart(context.Background()))
	assert.Equal(t, []string{
		"snapctl services",
		"snapctl start manila-data.manila-data",
		"snapctl restart manila-data.other",
	}, sys.calls)
}

func TestSnapctlServicesWithoutHeader(t *testing.T) {
	sys := &fakeSystem{outputs: map[string][]byte{
		"snapctl services": []byte("manila-data.manila-data  enabled  active  -\n"),
	}}
	services, err := NewSnapctl(sys).List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, services, "manila-data")
}

func TestRealSystemOutputCapturesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := RealSystem{}.Output(context.Background(), "sh", "-c", "echo out; echo oops >&2; exit 3")
	require.Error(t, err)
	assert.Equal(t, "out\n", string(out))

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "oops", string(cmdErr.Stderr))
	assert.Contains(t, err.Error(), "oops")
}
