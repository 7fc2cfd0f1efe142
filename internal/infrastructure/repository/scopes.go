package repository

import (
	"github.com/sangkips/salesreport-api/internal/domain/report"
	"gorm.io/gorm"
)

// SalesFilterScope returns a GORM scope that pushes a report filter down to
// the sales_data query. Unset values and the "All" sentinel add no condition.
func SalesFilterScope(filter *report.Filter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}

		if !report.IsUnset(filter.Category) {
			db = db.Where("category = ?", filter.Category)
		}
		if !report.IsUnset(filter.Region) {
			db = db.Where("region = ?", filter.Region)
		}
		if !report.IsUnset(filter.SalesPerson) {
			db = db.Where("sales_person_name = ?", filter.SalesPerson)
		}
		if filter.FromDate != nil {
			db = db.Where("sale_date >= ?", *filter.FromDate)
		}
		if filter.ToDate != nil {
			db = db.Where("sale_date <= ?", *filter.ToDate)
		}
		return db
	}
}
