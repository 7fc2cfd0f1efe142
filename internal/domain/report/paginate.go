package report

import (
	"slices"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// Page is one page of the sales table together with totals over the whole
// filtered set.
type Page struct {
	Items             []entity.Sale   `json:"items"`
	TotalItems        int             `json:"total_items"`
	TotalPages        int             `json:"total_pages"`
	CurrentPage       int             `json:"current_page"`
	PageSize          int             `json:"page_size"`
	HasPrevious       bool            `json:"has_previous"`
	HasNext           bool            `json:"has_next"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	AverageSale       decimal.Decimal `json:"average_sale"`
	TotalTransactions int             `json:"total_transactions"`
}

// SortByDateDesc returns a copy of sales ordered most recent first.
// Sales on the same instant keep their input order.
func SortByDateDesc(sales []entity.Sale) []entity.Sale {
	sorted := slices.Clone(sales)
	slices.SortStableFunc(sorted, func(a, b entity.Sale) int {
		return b.SaleDate.Compare(a.SaleDate)
	})
	return sorted
}

// Paginate sorts the filtered sales by date descending and returns the
// requested page. Page numbers below 1 are treated as 1 and a non-positive
// page size as the default; a page past the end has no items but still
// carries the totals.
func Paginate(sales []entity.Sale, page, pageSize int) *Page {
	params := &pagination.PaginationParams{Page: max(page, 1), PageSize: pageSize}
	if params.PageSize < 1 {
		params.PageSize = pagination.DefaultPageSize
	}

	sorted := SortByDateDesc(sales)
	start, end := params.Bounds(len(sorted))
	meta := pagination.NewPagination(params.Page, params.PageSize, len(sorted))

	items := sorted[start:end]
	if items == nil {
		items = []entity.Sale{}
	}

	return &Page{
		Items:             items,
		TotalItems:        meta.TotalItems,
		TotalPages:        meta.TotalPages,
		CurrentPage:       meta.CurrentPage,
		PageSize:          meta.PageSize,
		HasPrevious:       meta.HasPrevious,
		HasNext:           meta.HasNext,
		TotalSales:        sum(sorted),
		AverageSale:       average(sorted),
		TotalTransactions: len(sorted),
	}
}
