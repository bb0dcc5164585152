package browse

import "github.com/filetug/allocfs/pkg/files"

// RootLabel is the label of the first breadcrumb.
const RootLabel = "/"

type Breadcrumb struct {
	Label string
	Path  string
}

// Breadcrumbs decomposes p into the root followed by one crumb per segment
// carrying its cumulative path.
func Breadcrumbs(p string) []Breadcrumb {
	segments := files.Segments(p)
	crumbs := make([]Breadcrumb, 0, len(segments)+1)
	crumbs = append(crumbs, Breadcrumb{Label: RootLabel, Path: files.Root})
	current := files.Root
	for _, segment := range segments {
		current = files.JoinPath(current, segment)
		crumbs = append(crumbs, Breadcrumb{Label: segment, Path: current})
	}
	return crumbs
}
