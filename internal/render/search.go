package render

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

// ErrTemplateNotFound reports that no search path root holds a template.
var ErrTemplateNotFound = errors.New(messages.RenderTemplateNotFound)

// SearchPath resolves template sources by name across ordered roots.
// The first root holding the name wins.
type SearchPath struct {
	roots []fs.FS
}

// NewSearchPath returns a SearchPath over roots, searched in order.
func NewSearchPath(roots ...fs.FS) *SearchPath {
	return &SearchPath{roots: roots}
}

// Len returns the number of roots.
func (s *SearchPath) Len() int {
	return len(s.roots)
}

// Read returns the template source for name from the first root that has it.
func (s *SearchPath) Read(name string) ([]byte, error) {
	for _, root := range s.roots {
		data, err := fs.ReadFile(root, name)
		if err == nil {
			return data, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, fmt.Errorf(messages.RenderReadTemplateFmt, name, err)
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}
