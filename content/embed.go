// Package content embeds the markdown copy shown on each page.
//
// Files live at <lang>/<slug>.md and start with YAML front matter.
package content

import (
	"embed"
	"io/fs"
)

//go:embed en/*.md ja/*.md
var files embed.FS

// FS returns the embedded page copy.
func FS() fs.FS {
	return files
}
