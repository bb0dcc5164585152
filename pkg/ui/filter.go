package ui

import (
	"fmt"

	"github.com/filetug/allocfs/pkg/files"
	"github.com/gobwas/glob"
)

// Filter hides files whose names do not match a glob mask.
// Directories are always visible so the tree stays navigable.
type Filter struct {
	Pattern string
	mask    glob.Glob
}

func NewFilter(pattern string) (Filter, error) {
	if pattern == "" {
		return Filter{}, nil
	}
	mask, err := glob.Compile(pattern)
	if err != nil {
		return Filter{}, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}
	return Filter{Pattern: pattern, mask: mask}, nil
}

func (f Filter) IsEmpty() bool {
	return f.mask == nil
}

func (f Filter) IsVisible(entry files.FileEntry) bool {
	if entry.IsDir || f.mask == nil {
		return true
	}
	return f.mask.Match(entry.Name)
}

func (f Filter) Apply(entries []files.FileEntry) []files.FileEntry {
	visible := make([]files.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if f.IsVisible(entry) {
			visible = append(visible, entry)
		}
	}
	return visible
}
