// Package locales embeds the UI string dictionaries.
package locales

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var files embed.FS

// FS returns the embedded locale dictionaries (<lang>.json at the root).
func FS() fs.FS {
	return files
}
