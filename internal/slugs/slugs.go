// Package slugs derives vault names from directory paths.
package slugs

import (
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
)

// ComponentSlug converts a string to a URL-safe slug appropriate for a
// single name component.
func ComponentSlug(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}

// VaultName derives a vault name from the basename of dir, e.g.
// "~/Documents/Work Journal" becomes "work-journal".
func VaultName(dir string) string {
	base := filepath.Base(filepath.Clean(strings.TrimSpace(dir)))
	switch base {
	case ".", string(filepath.Separator), "":
		return "default"
	}
	if name := ComponentSlug(base); name != "" {
		return name
	}
	return "default"
}
