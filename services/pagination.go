package services

import (
	"fmt"
	"strings"

	"github.com/authors-haven/backend/errs"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// QueryMetadata is the store-level window derived from a page/limit request.
type QueryMetadata struct {
	Limit  int
	Offset int
}

// PageMetadata describes one page of results for response envelopes.
type PageMetadata struct {
	CurrentPage  int    `json:"currentPage"`
	PreviousPage string `json:"previousPage,omitempty"`
	NextPage     string `json:"nextPage,omitempty"`
	TotalPages   int    `json:"totalPages"`
	TotalItems   int64  `json:"totalItems"`
}

// PaginationQueryMetadata clamps the requested page and limit to sane values
// and converts them to a limit/offset window. page <= 0 becomes 1 and
// limit <= 0 becomes 10.
func PaginationQueryMetadata(page, limit int) QueryMetadata {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return QueryMetadata{
		Limit:  limit,
		Offset: limit * (page - 1),
	}
}

// NewPageMetadata computes page navigation metadata for a result set.
// entityPath is the absolute base URL of the listed collection, e.g.
// "https://host/api/articles". Requesting a page beyond the last one is a
// typed 400 rather than a sentinel string.
func NewPageMetadata(page, limit int, totalItems int64, entityPath string) (PageMetadata, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	if totalItems > 0 && page > totalPages {
		return PageMetadata{}, errs.NewBadRequestError(
			fmt.Sprintf("page %d is out of range, last page is %d", page, totalPages))
	}

	metadata := PageMetadata{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}

	base := strings.TrimSuffix(entityPath, "/")
	if page > 1 {
		metadata.PreviousPage = fmt.Sprintf("%s?page=%d&limit=%d", base, page-1, limit)
	}
	if page < totalPages {
		metadata.NextPage = fmt.Sprintf("%s?page=%d&limit=%d", base, page+1, limit)
	}
	return metadata, nil
}
