// Package fsutil holds the directory helpers a resize run is built from:
// path normalization, listing with image filtering, and incremental
// directory creation.
package fsutil

import (
	"os"
	"strings"
)

// EnsureTrailingSeparator returns path with a trailing separator. Empty or
// whitespace-only input maps to the current directory.
func EnsureTrailingSeparator(path string) string {
	sep := string(os.PathSeparator)
	if strings.TrimSpace(path) == "" {
		return "." + sep
	}
	if strings.HasSuffix(path, sep) || strings.HasSuffix(path, "/") {
		return path
	}
	return path + sep
}
