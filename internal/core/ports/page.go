package ports

import (
	"fmt"

	"ordersapp/internal/pkg/errs"
)

// SortDirection orders paged results ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection converts an external string into a SortDirection.
func ParseSortDirection(value string) (SortDirection, error) {
	switch SortDirection(value) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("sort direction",
			fmt.Errorf("%q is not a valid sort direction", value))
	}
}

// PageRequest describes which slice of a filtered result set to return.
// SortField is matched against a per-query whitelist of sortable columns;
// anything else is rejected rather than interpolated into SQL.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	Direction SortDirection
}

// Offset returns the row offset for the requested page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is one slice of a filtered, sorted result set together with the
// numbers a client needs to paginate further.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles a result page, deriving the page count from the total.
func NewPage[T any](items []T, req PageRequest, totalItems int64) Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((totalItems + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
