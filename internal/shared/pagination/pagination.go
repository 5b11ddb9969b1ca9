package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapp-backend/internal/shared/response"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pageable carries the page window and ordering requested by the client.
type Pageable struct {
	Limit  int
	Offset int
	SortBy string
	Order  string
}

// FromQuery parses limit/offset/sort_by/order query parameters with the
// defaults and caps the API enforces everywhere.
func FromQuery(c *gin.Context, defaultSort string) Pageable {
	limit := DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			limit = l
		}
	}

	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	return Pageable{
		Limit:  limit,
		Offset: offset,
		SortBy: c.DefaultQuery("sort_by", defaultSort),
		Order:  c.DefaultQuery("order", "asc"),
	}
}

// Normalize clamps the window so repositories never see an unbounded or
// negative page.
func (p Pageable) Normalize() Pageable {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// MetaFor computes the pagination meta block for a total row count.
func (p Pageable) MetaFor(total int64) *response.Meta {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &response.Meta{
		CurrentPage: (p.Offset / limit) + 1,
		PageSize:    limit,
		TotalItems:  total,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
	}
}
