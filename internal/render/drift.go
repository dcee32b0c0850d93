package render

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/openstack-snaps/manila-data/internal/layout"
	"github.com/openstack-snaps/manila-data/internal/messages"
)

// DriftState classifies a destination against what would be rendered now.
type DriftState int

const (
	// DriftCurrent means the destination matches the current rendering.
	DriftCurrent DriftState = iota
	// DriftMissing means the destination does not exist; the next hook renders it.
	DriftMissing
	// DriftChanged means the destination differs and will not be rewritten.
	DriftChanged
)

// Drift compares one template's destination to its current rendering.
type Drift struct {
	Spec        layout.Template
	Path        string
	State       DriftState
	UnifiedDiff string
	Truncated   bool
}

// Drift renders every spec in memory and compares it to the file on disk
// without writing anything. maxLines caps each unified diff; zero means no cap.
// Unlike Render, a context failure is returned.
func (e *Engine) Drift(source Source, specs []layout.Template, maxLines int) ([]Drift, error) {
	context, err := source()
	if err != nil {
		return nil, fmt.Errorf(messages.RenderContextFmt, err)
	}
	out := make([]Drift, 0, len(specs))
	for _, spec := range specs {
		path, err := e.Destination(spec)
		if err != nil {
			return nil, err
		}
		rendered, err := e.renderSpec(spec, context)
		if err != nil {
			return nil, err
		}
		entry := Drift{Spec: spec, Path: path}
		existing, err := e.sys.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			entry.State = DriftMissing
		case err != nil:
			return nil, fmt.Errorf(messages.RenderReadFmt, path, err)
		case string(existing) == rendered:
			entry.State = DriftCurrent
		default:
			entry.State = DriftChanged
			entry.UnifiedDiff, entry.Truncated = unifiedDiff(path, string(existing), rendered, maxLines)
		}
		out = append(out, entry)
	}
	return out, nil
}

func unifiedDiff(path string, current string, rendered string, maxLines int) (string, bool) {
	diff := udiff.Unified(path+" (on disk)", path+" (rendered)", current, rendered)
	if maxLines <= 0 {
		return diff, false
	}
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) <= maxLines {
		return diff, false
	}
	return strings.Join(lines[:maxLines], "\n") + "\n", true
}
