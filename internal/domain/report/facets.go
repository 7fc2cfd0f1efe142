package report

import (
	"slices"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/enum"
)

// DimensionValue returns the value of a sale along a facet dimension
func DimensionValue(sale *entity.Sale, dim enum.Dimension) string {
	switch dim {
	case enum.DimensionCategory:
		return sale.Category
	case enum.DimensionRegion:
		return sale.Region
	case enum.DimensionSalesperson:
		return sale.SalesPersonName
	default:
		return ""
	}
}

// DistinctValues returns each value of the dimension once, in first-seen order
func DistinctValues(sales []entity.Sale, dim enum.Dimension) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for i := range sales {
		v := DimensionValue(&sales[i], dim)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Options turns raw dimension values into a selector list: sorted,
// de-duplicated and headed by AllValue.
func Options(values []string) []string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	options := make([]string, 0, len(sorted)+1)
	options = append(options, AllValue)
	return append(options, sorted...)
}

// Facets lists the selectable values of a dimension. It must be given the
// unfiltered sales so that option lists do not shrink as filters are applied.
func Facets(all []entity.Sale, dim enum.Dimension) []string {
	return Options(DistinctValues(all, dim))
}
