// Package pagination provides page-based read shaping shared by all list
// endpoints.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// DefaultLimit is the page size used when the client does not supply one.
const DefaultLimit = 5

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// PageRequest holds pagination parameters parsed from query strings.
// Non-numeric values fail binding; zero and negative values are clamped to
// defaults rather than rejected so a sloppy client never gets a 400 for an
// off-by-one page number.
type PageRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Clamp normalizes the request in place: page floors at 1, limit falls back
// to DefaultLimit and caps at MaxLimit.
func (p *PageRequest) Clamp() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse wraps a paginated list of items with paging metadata.
type PageResponse[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, limit int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:        data,
		CurrentPage: page,
		Limit:       limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// Paginate returns a GORM scope applying OFFSET and LIMIT for the request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}
