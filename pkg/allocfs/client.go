// Package allocfs defines the remote API surface used to browse
// the sandboxed filesystem of an allocation.
package allocfs

import (
	"context"
	"errors"
	"time"
)

// ErrNoAllocation is returned when no allocation ID was given.
var ErrNoAllocation = errors.New("allocation id is required")

// AllocFileInfo is a directory entry as reported by the remote API.
type AllocFileInfo struct {
	Name     string
	IsDir    bool
	Size     uint64
	FileMode string
	ModTime  time.Time
}

// Client reads allocation directories and files.
type Client interface {
	ListDirectory(ctx context.Context, allocID, path string) ([]AllocFileInfo, error)
	// ReadFileContent returns at most limit bytes from the start of the file.
	// A limit of zero or less reads the whole file.
	ReadFileContent(ctx context.Context, allocID, path string, limit int64) (string, error)
}
