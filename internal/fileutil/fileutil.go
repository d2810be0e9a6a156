// Package fileutil provides the small filesystem helpers shared by the
// extraction and organization stages.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates path (and parents) if absent. Existing directories are
// left untouched.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// HasSuffixFold reports whether name ends in suffix, compared case-insensitively.
func HasSuffixFold(name, suffix string) bool {
	if len(name) < len(suffix) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(suffix):], suffix)
}

// SwapExt replaces name's extension with newExt (including the dot). A name
// without an extension gets newExt appended.
func SwapExt(name, newExt string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + newExt
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
