package surface

import (
	"path/filepath"
	"regexp"
	"strings"
)

// A scheme needs at least two characters so that "C:\..." stays a path.
var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]+:`)

// BlankURL is loaded when an empty URL is requested.
const BlankURL = "about:blank"

// HasScheme reports whether url starts with an RFC 3986 scheme.
func HasScheme(url string) bool {
	return schemePattern.MatchString(url)
}

// ResolveURL turns a resources-relative path into a file URL. URLs with a
// scheme pass through unchanged.
func ResolveURL(resourcesDir, url string) string {
	if url == "" {
		return BlankURL
	}
	if HasScheme(url) {
		return url
	}
	return "file://" + filepath.ToSlash(resourcesDir) + "/" + strings.TrimPrefix(filepath.ToSlash(url), "/")
}
