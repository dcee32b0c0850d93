package services

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-snaps/manila-data/internal/snap"
	"github.com/openstack-snaps/manila-data/internal/testutil"
)

func TestCommandLine(t *testing.T) {
	paths := snap.Paths{Common: "/foo", Snap: "/lish"}
	got := CommandLine(ManilaDataService(), paths)
	assert.Equal(t, []string{
		"/lish/usr/bin/manila-data",
		"--config-file",
		"/foo/etc/manila/manila.conf",
		"--config-file",
		"/foo/etc/manila/rootwrap.conf",
	}, got)

	bare := CommandLine(Service{Name: "x", Executable: "bin/x"}, paths)
	assert.Equal(t, []string{"/lish/bin/x"}, bare)
}

func TestRunPassesConfigFilesAndExitCode(t *testing.T) {
	paths := testutil.SnapPaths(t)
	argsFile := filepath.Join(t.TempDir(), "args")
	testutil.WriteArgRecorder(t, filepath.Join(paths.Snap, "usr/bin"), "manila-data", argsFile, 0)

	code, err := Run(context.Background(), ManilaDataService(), paths, RunOptions{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{
		"--config-file",
		filepath.Join(paths.Common, "etc/manila/manila.conf"),
		"--config-file",
		filepath.Join(paths.Common, "etc/manila/rootwrap.conf"),
	}, testutil.ReadRecordedArgs(t, argsFile))
}

func TestRunReturnsNonZeroExitWithoutError(t *testing.T) {
	paths := testutil.SnapPaths(t)
	testutil.WriteStubWithExit(t, filepath.Join(paths.Snap, "usr/bin"), "manila-data", 3)

	code, err := Run(context.Background(), ManilaDataService(), paths, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRunMissingExecutable(t *testing.T) {
	paths := testutil.SnapPaths(t)

	code, err := Run(context.Background(), ManilaDataService(), paths, RunOptions{})
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "manila-data")
}

func TestRunReportsSignalExit(t *testing.T) {
	paths := testutil.SnapPaths(t)
	svc := Service{Name: "killer", Executable: "bin/killer"}
	testutil.WriteScript(t, filepath.Join(paths.Snap, "bin"), "killer", "#!/bin/sh\nkill -TERM $$\n")

	code, err := Run(context.Background(), svc, paths, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 128+15, code)
}
