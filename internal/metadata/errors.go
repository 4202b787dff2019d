package metadata

import (
	"errors"
	"fmt"
)

var (
	errMissingCategory = errors.New("category not present in document")
	errNoEntries       = errors.New("category declares no values")
)

// FetchError reports a failure to obtain a usable metadata document:
// transport failure, non-2xx status, or an unreadable/malformed body.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching metadata from %s: server returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching metadata from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SchemaError reports a category whose JSON shape does not match what the
// wizard expects.
type SchemaError struct {
	Category string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("category %q: %v", e.Category, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
