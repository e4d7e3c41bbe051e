package domain

// DefaultPageSize is used when the caller does not specify one.
const DefaultPageSize = 20

// MaxPageSize is the upper bound accepted for a single page.
const MaxPageSize = 100

// MaxCursorLength bounds the opaque pagination token. Anything longer is
// rejected before it reaches the store.
const MaxCursorLength = 100

// PageParams holds cursor pagination parameters for list queries.
type PageParams struct {
	Size  int    // items per page, 1..MaxPageSize
	After string // opaque cursor issued by a previous page, empty for the first page
}

// DefaultPageParams returns params for the first page with the default size.
func DefaultPageParams() PageParams {
	return PageParams{Size: DefaultPageSize}
}

// Validate checks the parameters against the documented bounds.
func (p PageParams) Validate() error {
	if _, err := ValidatePageSize(p.Size); err != nil {
		return err
	}
	if _, err := ValidateCursor(p.After); err != nil {
		return err
	}
	return nil
}

// Page is one page of records plus the cursor to fetch the next one.
// Cursor is empty when there are no further records.
type Page[T any] struct {
	Records []T    `json:"records"`
	Cursor  string `json:"cursor,omitempty"`
	More    bool   `json:"more"`
}
