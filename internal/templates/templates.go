// Package templates bundles the default template sources.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.j2
var files embed.FS

// FS returns the bundled templates as a filesystem rooted at the template names.
func FS() fs.FS {
	return files
}

// Read returns the bundled template named name.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
