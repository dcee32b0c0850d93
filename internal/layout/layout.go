// Package layout declares the directories and template files a deployment manages.
package layout

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/openstack-snaps/manila-data/internal/messages"
)

// TemplateSuffix is the conventional suffix of template source files.
const TemplateSuffix = ".j2"

const (
	defaultDirectoryMode fs.FileMode = 0o750
	defaultTemplateMode  fs.FileMode = 0o640
)

// Location selects which packaging-provided root a relative path resolves against.
type Location int

const (
	// Common is the revision-independent shared root ($SNAP_COMMON).
	Common Location = iota
	// Data is the revision-specific writable root ($SNAP_DATA).
	Data
)

// String returns the location class name.
func (l Location) String() string {
	switch l {
	case Common:
		return "common"
	case Data:
		return "data"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// Roots maps each Location to an absolute root path.
type Roots map[Location]string

// Root returns the root path for loc.
func (r Roots) Root(loc Location) (string, error) {
	root, ok := r[loc]
	if !ok || root == "" {
		return "", fmt.Errorf(messages.SnapLocationUnsetFmt, loc)
	}
	return root, nil
}

// Resolve joins rel onto the root for loc.
func (r Roots) Resolve(loc Location, rel string) (string, error) {
	root, err := r.Root(loc)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, rel), nil
}

// Directory is a directory created before templating.
type Directory struct {
	Path     string
	Mode     fs.FileMode
	Location Location
}

// CommonDirectory declares a directory under the common root with mode 0750.
func CommonDirectory(path string) Directory {
	return Directory{Path: path, Mode: defaultDirectoryMode, Location: Common}
}

// DataDirectory declares a directory under the data root with mode 0750.
func DataDirectory(path string) Directory {
	return Directory{Path: path, Mode: defaultDirectoryMode, Location: Data}
}

// Template is a file rendered from a template source.
type Template struct {
	// Filename is the source name; the destination file is Filename without TemplateSuffix.
	Filename string
	// Dest is the destination directory relative to the location root.
	Dest string
	// Mode is applied to the rendered file only.
	Mode fs.FileMode
	// TemplateName overrides Filename as the template source name when set.
	TemplateName string
	Location     Location
}

// CommonTemplate declares a template rendered under the common root with mode 0640.
func CommonTemplate(src string, dest string) Template {
	return Template{Filename: src, Dest: dest, Mode: defaultTemplateMode, Location: Common}
}

// DataTemplate declares a template rendered under the data root with mode 0640.
func DataTemplate(src string, dest string) Template {
	return Template{Filename: src, Dest: dest, Mode: defaultTemplateMode, Location: Data}
}

// Template returns the template source name: the override when set, else Filename.
func (t Template) Template() string {
	if t.TemplateName != "" {
		return t.TemplateName
	}
	return t.Filename
}

// RelPath is a descriptive key: Dest joined with the template source name.
// It is not the path written to; see DestFilename.
func (t Template) RelPath() string {
	return filepath.Join(t.Dest, t.Template())
}

// DestFilename is the rendered file's name.
func (t Template) DestFilename() string {
	return strings.TrimSuffix(t.Filename, TemplateSuffix)
}
