package types

import "fmt"

// ------------------------------
// Request Types
// ------------------------------

// SortBy selects the list ordering key transmitted to emoji.adminList.
type SortBy string

// SortDir selects the list ordering direction.
type SortDir string

const (
	SortByName    SortBy = "name"
	SortByCreated SortBy = "created"

	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Defaults applied by ListEmojiRequest.WithDefaults.
const (
	DefaultSortBy  = SortByCreated
	DefaultSortDir = SortDesc
	DefaultPage    = 1
	DefaultCount   = 100
)

// ListEmojiRequest holds parameters for emoji.adminList. The zero value is
// valid; unset fields are filled in by WithDefaults before transmission.
type ListEmojiRequest struct {
	// Queries are free-text filters, JSON-encoded into a single form field.
	Queries []string
	SortBy  SortBy
	SortDir SortDir
	// Page is 1-based.
	Page  int
	Count int
}

// WithDefaults returns a copy with every unset field replaced by its
// documented default: no queries, sort by creation time descending,
// page 1, 100 records per page.
func (r ListEmojiRequest) WithDefaults() ListEmojiRequest {
	if r.Queries == nil {
		r.Queries = []string{}
	}
	if r.SortBy == "" {
		r.SortBy = DefaultSortBy
	}
	if r.SortDir == "" {
		r.SortDir = DefaultSortDir
	}
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.Count == 0 {
		r.Count = DefaultCount
	}
	return r
}

// Validate checks the request after defaulting. The server is the authority
// on everything else.
func (r ListEmojiRequest) Validate() error {
	switch r.SortBy {
	case SortByName, SortByCreated:
	default:
		return fmt.Errorf("invalid sort key %q", r.SortBy)
	}
	switch r.SortDir {
	case SortAsc, SortDesc:
	default:
		return fmt.Errorf("invalid sort direction %q", r.SortDir)
	}
	if r.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", r.Page)
	}
	if r.Count < 1 {
		return fmt.Errorf("count must be >= 1, got %d", r.Count)
	}
	return nil
}
