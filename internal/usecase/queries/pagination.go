package queries

import (
	"math"
	"slices"
	"strings"
	"time"

	"cashdrawer-api/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	SortCreatedAt = "created_at"

	createdDateLayout = "2006-01-02"
)

var (
	ErrInvalidPage      = errs.BadRequest("page must be a positive integer")
	ErrInvalidLimit     = errs.BadRequest("limit must be between 1 and 100")
	ErrInvalidSortBy    = errs.BadRequest("unsupported sortBy column")
	ErrInvalidSortOrder = errs.BadRequest("sortOrder must be ASC or DESC")
	ErrInvalidDate      = errs.BadRequest("createdDate must use the YYYY-MM-DD format")
	ErrInvalidStatus    = errs.BadRequest("unsupported status filter")
)

// PageRequest is the raw paging input of a list call. Zero values select the
// defaults.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ListParams is a validated page request ready for a read store.
type ListParams struct {
	Page    int
	Limit   int
	Offset  int
	SortKey string
	Desc    bool
}

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

type Page[T any] struct {
	Items []*T
	Meta  PageMeta
}

// Resolve validates the request against the sort keys a list supports.
func (r PageRequest) Resolve(sortKeys []string) (ListParams, error) {
	page := r.Page
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return ListParams{}, ErrInvalidPage
	}
	limit := r.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return ListParams{}, ErrInvalidLimit
	}

	sortKey := SortCreatedAt
	if r.SortBy != "" {
		sortKey = r.SortBy
		if !slices.Contains(sortKeys, sortKey) {
			return ListParams{}, ErrInvalidSortBy
		}
	}

	desc := true
	switch strings.ToUpper(r.SortOrder) {
	case "", "DESC":
	case "ASC":
		desc = false
	default:
		return ListParams{}, ErrInvalidSortOrder
	}

	return ListParams{
		Page:    page,
		Limit:   limit,
		Offset:  (page - 1) * limit,
		SortKey: sortKey,
		Desc:    desc,
	}, nil
}

func NewPageMeta(p ListParams, total int64) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return PageMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// ParseCreatedDate parses a YYYY-MM-DD day filter. An empty string means no
// filter.
func ParseCreatedDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(createdDateLayout, s, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &day, nil
}
