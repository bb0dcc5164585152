package browse

import "github.com/filetug/allocfs/pkg/files"

type ListingStatus int

const (
	ListingIdle ListingStatus = iota
	ListingLoading
	ListingReady
	ListingError
)

func (s ListingStatus) String() string {
	switch s {
	case ListingIdle:
		return "idle"
	case ListingLoading:
		return "loading"
	case ListingReady:
		return "ready"
	case ListingError:
		return "error"
	default:
		return "unknown"
	}
}

type ContentStatus int

const (
	ContentIdle ContentStatus = iota
	ContentLoading
	ContentReady
	ContentError
)

func (s ContentStatus) String() string {
	switch s {
	case ContentIdle:
		return "idle"
	case ContentLoading:
		return "loading"
	case ContentReady:
		return "ready"
	case ContentError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the navigation view model. It is owned by the Controller;
// hosts receive copies and must treat listing entries as read-only.
type State struct {
	CurrentPath   string
	Breadcrumbs   []Breadcrumb
	Listing       *files.DirectoryListing
	ListingStatus ListingStatus
	SelectedEntry *files.FileEntry
	Content       *string
	ContentStatus ContentStatus

	// ErrorMessage is the listing error shown in place of the entries.
	ErrorMessage string
	// ContentErrorMessage is the read error shown in the preview.
	ContentErrorMessage string
}

func rootState() State {
	return State{
		CurrentPath: files.Root,
		Breadcrumbs: Breadcrumbs(files.Root),
	}
}

func (s State) clone() State {
	c := s
	c.Breadcrumbs = append([]Breadcrumb(nil), s.Breadcrumbs...)
	if s.SelectedEntry != nil {
		selected := *s.SelectedEntry
		c.SelectedEntry = &selected
	}
	if s.Content != nil {
		content := *s.Content
		c.Content = &content
	}
	return c
}

func (s *State) clearContent() {
	s.SelectedEntry = nil
	s.Content = nil
	s.ContentStatus = ContentIdle
	s.ContentErrorMessage = ""
}
