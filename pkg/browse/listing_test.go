package browse

import (
	"context"
	"errors"
	"testing"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/stretchr/testify/assert"
)

func TestListingService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted", func(t *testing.T) {
		s := NewListingService(newFakeClient())
		listing, err := s.List(ctx, "a1", "/web")
		assert.NoError(t, err)
		assert.Equal(t, "/web", listing.Path)
		names := make([]string, len(listing.Entries))
		for i, e := range listing.Entries {
			names[i] = e.Name
		}
		assert.Equal(t, []string{"local", "secrets", "app.config.yaml", "run.exe"}, names)
		assert.Equal(t, "-rwxr-xr-x", listing.Entries[3].Mode)
		assert.Equal(t, uint64(10), listing.Entries[3].Size)
		assert.False(t, listing.Entries[3].ModifiedAt.IsZero())
	})

	t.Run("empty_dir", func(t *testing.T) {
		s := NewListingService(newFakeClient())
		listing, err := s.List(ctx, "a1", "/web/secrets")
		assert.NoError(t, err)
		assert.NotNil(t, listing.Entries)
		assert.Empty(t, listing.Entries)
	})

	t.Run("error", func(t *testing.T) {
		client := newFakeClient()
		client.listErrs["/web"] = errRemote
		s := NewListingService(client)
		_, err := s.List(ctx, "a1", "/web")
		var fetchErr *ListingFetchError
		assert.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, "/web", fetchErr.Path)
		assert.Equal(t, errRemote.Error(), fetchErr.Message)
		assert.ErrorIs(t, err, errRemote)
		assert.EqualError(t, err, "failed to list /web: "+errRemote.Error())
	})
}

type staticClient struct {
	allocfs.Client
	content string
	limits  *[]int64
}

func (c staticClient) ReadFileContent(_ context.Context, _, _ string, limit int64) (string, error) {
	if c.limits != nil {
		*c.limits = append(*c.limits, limit)
	}
	if limit > 0 && int64(len(c.content)) > limit {
		return c.content[:limit], nil
	}
	return c.content, nil
}
