// Package render writes template specifications to their destinations.
//
// A destination file is only ever written when it does not exist yet. Once a
// rendered file is on disk the engine leaves it alone, whatever the current
// configuration; operators who want a re-render remove the file (or its
// directory) and run the configure hook again. Drift reports the difference.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/openstack-snaps/manila-data/internal/layout"
	"github.com/openstack-snaps/manila-data/internal/log"
	"github.com/openstack-snaps/manila-data/internal/messages"
)

// defaultDirMode is filtered through the process umask, like mkdir(1).
const defaultDirMode fs.FileMode = 0o777

// Source produces the complete rendering context, keyed by namespace.
type Source func() (map[string]any, error)

// Options configures an Engine.
type Options struct {
	System     System
	Roots      layout.Roots
	SearchPath *SearchPath
	Logger     *slog.Logger
}

// Engine renders template specifications.
type Engine struct {
	sys    System
	roots  layout.Roots
	search *SearchPath
	logger *slog.Logger
}

// New returns an Engine. System and SearchPath are required.
func New(opts Options) (*Engine, error) {
	if opts.System == nil {
		return nil, errors.New(messages.RenderSystemRequired)
	}
	if opts.SearchPath == nil {
		return nil, errors.New(messages.RenderSearchPathRequired)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &Engine{
		sys:    opts.System,
		roots:  opts.Roots,
		search: opts.SearchPath,
		logger: logger,
	}, nil
}

// Render processes specs in order and returns those whose destination was written.
//
// When the context cannot be built the failure is logged and nothing is written.
// Any later error stops the pass and is returned along with the specs written so far;
// earlier writes are not rolled back.
func (e *Engine) Render(source Source, specs []layout.Template) ([]layout.Template, error) {
	changed := []layout.Template{}
	context, err := source()
	if err != nil {
		e.logger.Error(messages.RenderContextFailed, "error", err)
		return changed, nil
	}
	for _, spec := range specs {
		written, err := e.process(spec, context)
		if err != nil {
			return changed, err
		}
		if written {
			changed = append(changed, spec)
		}
	}
	return changed, nil
}

// Destination returns the path spec renders to.
func (e *Engine) Destination(spec layout.Template) (string, error) {
	dir, err := e.roots.Resolve(spec.Location, spec.Dest)
	if err != nil {
		return "", fmt.Errorf(messages.RenderResolveDestFmt, spec.RelPath(), err)
	}
	return filepath.Join(dir, spec.DestFilename()), nil
}

func (e *Engine) process(spec layout.Template, context map[string]any) (bool, error) {
	destFile, err := e.Destination(spec)
	if err != nil {
		return false, err
	}
	destDir := filepath.Dir(destFile)
	if err := e.sys.MkdirAll(destDir, defaultDirMode); err != nil {
		return false, fmt.Errorf(messages.RenderCreateDirFmt, destDir, err)
	}

	_, err = e.sys.Stat(destFile)
	if err == nil {
		e.logger.Debug(messages.RenderDestinationExists, "path", destFile)
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf(messages.RenderStatFmt, destFile, err)
	}

	e.logger.Debug(messages.RenderWritingFile, "path", destFile)
	rendered, err := e.renderSpec(spec, context)
	if err != nil {
		return false, err
	}
	if err := e.sys.WriteFile(destFile, []byte(rendered), spec.Mode); err != nil {
		return false, fmt.Errorf(messages.RenderWriteFmt, destFile, err)
	}
	if err := e.sys.Chmod(destFile, spec.Mode); err != nil {
		return false, fmt.Errorf(messages.RenderChmodFmt, destFile, err)
	}
	return true, nil
}

// renderSpec resolves spec's template (literal name first, then with
// TemplateSuffix) and expands it against context.
func (e *Engine) renderSpec(spec layout.Template, context map[string]any) (string, error) {
	name := spec.Template()
	source, err := e.search.Read(name)
	if errors.Is(err, ErrTemplateNotFound) {
		e.logger.Debug(messages.RenderTemplateRetrySuffix, "template", name)
		name += layout.TemplateSuffix
		source, err = e.search.Read(name)
	}
	if err != nil {
		return "", err
	}
	return Expand(name, string(source), context)
}

// Expand renders a template body against context. Missing keys are errors.
// The result ends with exactly one newline unless it is empty.
func Expand(name string, body string, context map[string]any) (string, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf(messages.RenderParseTemplateFmt, name, err)
	}
	var out strings.Builder
	if err := tpl.Execute(&out, context); err != nil {
		return "", fmt.Errorf(messages.RenderExecuteTemplateFmt, name, err)
	}
	return EnsureTrailingNewline(out.String()), nil
}

// EnsureTrailingNewline collapses any run of trailing newlines to exactly one.
// Empty content stays empty.
func EnsureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	return strings.TrimRight(content, "\n") + "\n"
}
