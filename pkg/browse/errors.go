package browse

import "fmt"

// ListingFetchError is returned when the remote listing call fails.
type ListingFetchError struct {
	Path    string
	Message string
	Err     error
}

func (e *ListingFetchError) Error() string {
	return fmt.Sprintf("failed to list %s: %s", e.Path, e.Message)
}

func (e *ListingFetchError) Unwrap() error {
	return e.Err
}

// ContentFetchError is returned when the remote read call fails.
type ContentFetchError struct {
	Path    string
	Message string
	Err     error
}

func (e *ContentFetchError) Error() string {
	return fmt.Sprintf("failed to read %s: %s", e.Path, e.Message)
}

func (e *ContentFetchError) Unwrap() error {
	return e.Err
}
