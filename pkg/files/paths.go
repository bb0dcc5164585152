package files

import (
	"path"
	"strings"
)

// Root is the path of the top of a browsable tree.
const Root = "/"

// CleanPath normalizes p into an absolute slash-separated path.
func CleanPath(p string) string {
	if p == "" {
		return Root
	}
	return path.Clean("/" + p)
}

// JoinPath appends name to dir.
func JoinPath(dir, name string) string {
	return path.Join(CleanPath(dir), name)
}

// ParentPath returns the parent of p. The parent of the root is the root.
func ParentPath(p string) string {
	return path.Dir(CleanPath(p))
}

// IsRoot reports whether p points to the root.
func IsRoot(p string) bool {
	return CleanPath(p) == Root
}

// Segments splits p into its non-empty path elements.
func Segments(p string) []string {
	trimmed := strings.Trim(CleanPath(p), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
