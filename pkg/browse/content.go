package browse

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/filetug/allocfs/pkg/fsutils"
)

// DefaultContentLimit caps the number of bytes kept for a preview.
const DefaultContentLimit = 1024 * 1024

type ContentViewerOption func(*ContentViewer)

// WithContentLimit sets the preview cap; zero or less disables truncation.
func WithContentLimit(limit int) ContentViewerOption {
	return func(v *ContentViewer) {
		v.limit = limit
	}
}

// ContentViewer fetches the text of a single file.
type ContentViewer struct {
	client allocfs.Client
	limit  int
}

func NewContentViewer(client allocfs.Client, o ...ContentViewerOption) *ContentViewer {
	v := &ContentViewer{
		client: client,
		limit:  DefaultContentLimit,
	}
	for _, opt := range o {
		opt(v)
	}
	return v
}

// Read returns the content of fullFilePath, truncated to the configured limit.
func (v *ContentViewer) Read(ctx context.Context, allocID, fullFilePath string) (string, error) {
	return v.ReadSized(ctx, allocID, fullFilePath, 0)
}

// ReadSized is Read for a file whose listed size is known. At most limit+1
// bytes are transferred; size is only used for the truncation marker.
func (v *ContentViewer) ReadSized(ctx context.Context, allocID, fullFilePath string, size uint64) (string, error) {
	var want int64
	if v.limit > 0 {
		want = int64(v.limit) + 1
	}
	content, err := v.client.ReadFileContent(ctx, allocID, fullFilePath, want)
	if err != nil {
		return "", &ContentFetchError{
			Path:    fullFilePath,
			Message: err.Error(),
			Err:     err,
		}
	}
	if v.limit <= 0 || len(content) <= v.limit {
		return content, nil
	}
	cut := v.limit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	shown := fsutils.GetSizeShortText(uint64(cut))
	if size <= uint64(v.limit) {
		return content[:cut] + fmt.Sprintf("\n… truncated, showing first %s", shown), nil
	}
	total := fsutils.GetSizeShortText(size)
	return content[:cut] + fmt.Sprintf("\n… truncated, showing first %s of %s", shown, total), nil
}
