// Package report holds the pure sales reporting logic: filtering, chart
// aggregation, pagination with summary totals and facet enumeration.
// Nothing in this package performs I/O or mutates the sales it is given.
package report

import (
	"time"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
)

// AllValue is the selector value meaning "no constraint"
const AllValue = "All"

// Filter narrows a sales set. Every field is optional and fields combine with AND.
// Date bounds are inclusive.
type Filter struct {
	Category    string     `json:"category,omitempty"`
	Region      string     `json:"region,omitempty"`
	SalesPerson string     `json:"sales_person,omitempty"`
	FromDate    *time.Time `json:"from_date,omitempty"`
	ToDate      *time.Time `json:"to_date,omitempty"`
}

// IsUnset reports whether a string filter value places no constraint
func IsUnset(value string) bool {
	return value == "" || value == AllValue
}

// IsEmpty reports whether the filter matches every sale
func (f *Filter) IsEmpty() bool {
	return f == nil ||
		(IsUnset(f.Category) && IsUnset(f.Region) && IsUnset(f.SalesPerson) &&
			f.FromDate == nil && f.ToDate == nil)
}

// Matches reports whether the sale satisfies every constraint of the filter
func (f *Filter) Matches(sale *entity.Sale) bool {
	if f == nil {
		return true
	}
	if !IsUnset(f.Category) && sale.Category != f.Category {
		return false
	}
	if !IsUnset(f.Region) && sale.Region != f.Region {
		return false
	}
	if !IsUnset(f.SalesPerson) && sale.SalesPersonName != f.SalesPerson {
		return false
	}
	if f.FromDate != nil && sale.SaleDate.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && sale.SaleDate.After(*f.ToDate) {
		return false
	}
	return true
}

// Apply returns the sales matching the filter in their original order.
// The input slice is never modified.
func Apply(sales []entity.Sale, filter *Filter) []entity.Sale {
	filtered := make([]entity.Sale, 0, len(sales))
	for i := range sales {
		if filter.Matches(&sales[i]) {
			filtered = append(filtered, sales[i])
		}
	}
	return filtered
}
