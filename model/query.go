package model

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuery is the normalized form of the common list parameters shared by
// every listing endpoint: pagination, free-text search and explicit ordering.
// Entity-specific equality filters live on the per-entity filter structs.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// ParseListQuery reads page/limit/search/sortBy/sortOrder from a query
// string. Absent or non-numeric page/limit fall back to the defaults.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		Search:    values.Get("search"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		q.Limit = l
	}
	return q
}

// Offset returns the row offset for the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the envelope block attached to every list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes the page count as ceil(total/limit).
func NewPagination(q ListQuery, total int64) Pagination {
	pages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		pages++
	}
	return Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: pages,
	}
}
