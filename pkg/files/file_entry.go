package files

import (
	"path"
	"strings"
	"time"
)

// FileEntry is a single entry of a remote directory listing.
// Entries are immutable once fetched.
type FileEntry struct {
	Name       string
	IsDir      bool
	Size       uint64
	Mode       string
	ModifiedAt time.Time
}

// Ext returns the lower-cased extension of the entry name including the dot.
func (e FileEntry) Ext() string {
	if e.IsDir {
		return ""
	}
	return strings.ToLower(path.Ext(e.Name))
}

// IsHidden reports whether the name starts with a dot.
func (e FileEntry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// IsExecutable reports whether the mode string describes a regular file
// with the owner execute bit set, e.g. "-rwxr-xr-x".
func (e FileEntry) IsExecutable() bool {
	if e.IsDir || len(e.Mode) < 4 {
		return false
	}
	return e.Mode[0] == '-' && e.Mode[3] == 'x'
}

func (e FileEntry) String() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}
