// Package templates embeds the HTML layout, partials and page templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed layout.tmpl partials/*.tmpl pages/*.tmpl
var files embed.FS

// FS returns the embedded template tree.
func FS() fs.FS {
	return files
}
