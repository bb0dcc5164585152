package browse

import (
	"context"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/filetug/allocfs/pkg/files"
)

// ListingService fetches and orders directory entries.
type ListingService struct {
	client allocfs.Client
}

func NewListingService(client allocfs.Client) *ListingService {
	return &ListingService{client: client}
}

// List returns the entries of effectivePath, directories first.
func (s *ListingService) List(ctx context.Context, allocID, effectivePath string) (files.DirectoryListing, error) {
	infos, err := s.client.ListDirectory(ctx, allocID, effectivePath)
	if err != nil {
		return files.DirectoryListing{}, &ListingFetchError{
			Path:    effectivePath,
			Message: err.Error(),
			Err:     err,
		}
	}
	entries := make([]files.FileEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, files.FileEntry{
			Name:       info.Name,
			IsDir:      info.IsDir,
			Size:       info.Size,
			Mode:       info.FileMode,
			ModifiedAt: info.ModTime,
		})
	}
	return files.NewDirectoryListing(effectivePath, entries), nil
}
