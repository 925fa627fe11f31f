package draft

import "github.com/heartmarshall/draftstore-backend/internal/domain"

// ListResult is one page of the caller's drafts.
type ListResult struct {
	Drafts []domain.Draft
	// NextAfter is the cursor for the following page; nil on the last page.
	NextAfter *int64
}
