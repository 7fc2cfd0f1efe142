package pagination

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageSizes are the page sizes offered to clients
var PageSizes = []int{10, 25, 50, 100}

// Pagination describes where a page sits within a result set
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// PaginationParams represents input parameters for pagination
type PaginationParams struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// DefaultPagination returns default pagination values
func DefaultPagination() *PaginationParams {
	return &PaginationParams{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Bounds returns the [start, end) slice bounds of the page within total items.
// A page past the end yields an empty range, however large the page number.
func (p *PaginationParams) Bounds(total int) (int, int) {
	if total <= 0 || p.PageSize < 1 {
		return 0, 0
	}
	index := max(p.Page-1, 0)
	// compare before multiplying so huge page numbers cannot overflow
	if index > (total-1)/p.PageSize {
		return total, total
	}
	start := index * p.PageSize
	return start, min(start+p.PageSize, total)
}

// NewPagination creates a new Pagination response
func NewPagination(page, pageSize, total int) *Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return &Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
