package files

import "sort"

// DirectoryListing holds the ordered entries of one directory.
type DirectoryListing struct {
	Path    string
	Entries []FileEntry
}

// NewDirectoryListing sorts entries and returns a listing for dirPath.
// The entries slice is sorted in place.
func NewDirectoryListing(dirPath string, entries []FileEntry) DirectoryListing {
	if entries == nil {
		entries = []FileEntry{}
	}
	return DirectoryListing{
		Path:    dirPath,
		Entries: SortEntries(entries),
	}
}

// Dirs returns the number of directory entries.
func (l DirectoryListing) Dirs() (count int) {
	for _, entry := range l.Entries {
		if entry.IsDir {
			count++
		}
	}
	return
}

// Find returns the entry with the given name.
func (l DirectoryListing) Find(name string) (FileEntry, bool) {
	for _, entry := range l.Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return FileEntry{}, false
}

// SortEntries orders directories before files and each group by name
// using case-sensitive byte-wise comparison.
func SortEntries(entries []FileEntry) []FileEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		// Directories first
		if entries[i].IsDir && !entries[j].IsDir {
			return true
		} else if !entries[i].IsDir && entries[j].IsDir {
			return false
		}
		// Then sort by name
		return entries[i].Name < entries[j].Name
	})
	return entries
}
