package report

import (
	"time"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func sale(id int, product, category, region, person, amount string, when time.Time) entity.Sale {
	return entity.Sale{
		ID:              id,
		ProductName:     product,
		Category:        category,
		Region:          region,
		SalesPersonName: person,
		Amount:          decimal.RequireFromString(amount),
		SaleDate:        when,
	}
}

// fixtureSales is a small, deterministic sales set spanning three months
func fixtureSales() []entity.Sale {
	return []entity.Sale{
		sale(1, "Cookbook", "Books", "Jakarta", "Jane Smith", "100", date(2024, 1, 5)),
		sale(2, "Biography", "Books", "Bandung", "John Doe", "200", date(2024, 2, 10)),
		sale(3, "Laptop Dell", "Electronics", "Jakarta", "John Doe", "1000", date(2024, 1, 20)),
		sale(4, "Office Chair", "Furniture", "Medan", "Alice Johnson", "450.50", date(2024, 3, 1)),
		sale(5, "Laptop Dell", "Electronics", "Bandung", "Jane Smith", "1200", date(2024, 3, 15)),
		sale(6, "Cookbook", "Books", "Medan", "Alice Johnson", "80", date(2024, 2, 28)),
	}
}

func ids(sales []entity.Sale) []int {
	out := make([]int, len(sales))
	for i, s := range sales {
		out[i] = s.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
