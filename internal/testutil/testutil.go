// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openstack-snaps/manila-data/internal/snap"
)

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteArgRecorder writes an executable shell stub that records its arguments
// to argsFile, one per line, and exits with exitCode.
func WriteArgRecorder(t *testing.T, dir string, name string, argsFile string, exitCode int) string {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\n: > '%s'\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> '%s'\ndone\nexit %d\n", argsFile, argsFile, exitCode)
	return WriteScript(t, dir, name, script)
}

// ReadRecordedArgs returns the arguments captured by WriteArgRecorder.
func ReadRecordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	trimmed := strings.TrimSuffix(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// SnapPaths returns paths rooted under a fresh temporary directory, with the
// common, data, and snap roots created.
func SnapPaths(t *testing.T) snap.Paths {
	t.Helper()
	root := t.TempDir()
	paths := snap.Paths{
		Common:     filepath.Join(root, "common"),
		Data:       filepath.Join(root, "data"),
		RealHome:   filepath.Join(root, "home"),
		Snap:       filepath.Join(root, "snap"),
		UserCommon: filepath.Join(root, "user_common"),
		UserData:   filepath.Join(root, "user_data"),
	}
	for _, dir := range []string{paths.Common, paths.Data, paths.Snap} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create %s: %v", dir, err)
		}
	}
	return paths
}

// WriteScript writes an executable file with content and returns its path.
func WriteScript(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create stub dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
