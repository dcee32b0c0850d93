package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"manila-data-snap", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"manila-data-snap", "unknown"}, &out, &out); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"manila-data-snap", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 42}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"manila-data"}, &out, &out, func(c int) { code = c })
	if code != 42 {
		t.Fatalf("expected exit 42, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("silent exit must not print, got %q", out.String())
	}
}

func TestRunMainSuccess(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error { return nil }

	called := false
	runMain([]string{"manila-data-snap"}, io.Discard, io.Discard, func(int) { called = true })
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"manila-data-snap", "--version"}
	main()
}

func TestCommandArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: nil, want: nil},
		{name: "plain binary", args: []string{"/snap/bin/manila-data-snap", "doctor"}, want: []string{"doctor"}},
		{name: "install hook", args: []string{"/snap/manila-data/x1/meta/hooks/install"}, want: []string{"install"}},
		{name: "configure hook", args: []string{"meta/hooks/configure", "--config-file", "x"}, want: []string{"configure", "--config-file", "x"}},
		{name: "service link", args: []string{"/snap/manila-data/x1/bin/manila-data"}, want: []string{"run", "manila-data"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := commandArgs(tc.args)
			if strings.Join(got, " ") != strings.Join(tc.want, " ") || len(got) != len(tc.want) {
				t.Fatalf("commandArgs(%v) = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "v1.0.0", "unknown", "unknown"
	if got := versionString(); got != "v1.0.0" {
		t.Fatalf("unexpected version %q", got)
	}
	Commit, BuildDate = "abc123", "2025-01-01"
	if got := versionString(); got != "v1.0.0 (commit abc123, built 2025-01-01)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestSilentExitErrorMessage(t *testing.T) {
	var err error = &SilentExitError{Code: 3}
	var silent *SilentExitError
	if !errors.As(err, &silent) || err.Error() != "exit 3" {
		t.Fatalf("unexpected silent exit error %v", err)
	}
}
