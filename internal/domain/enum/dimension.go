package enum

import "strings"

// Dimension is a filterable sales attribute with an enumerable set of values
type Dimension string

const (
	DimensionCategory    Dimension = "category"
	DimensionRegion      Dimension = "region"
	DimensionSalesperson Dimension = "salesperson"
)

// Dimensions lists the facet dimensions
var Dimensions = []Dimension{DimensionCategory, DimensionRegion, DimensionSalesperson}

// ParseDimension resolves a dimension token case-insensitively
func ParseDimension(token string) (Dimension, bool) {
	for _, d := range Dimensions {
		if strings.EqualFold(token, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Column returns the sales_data column backing the dimension
func (d Dimension) Column() string {
	switch d {
	case DimensionCategory:
		return "category"
	case DimensionRegion:
		return "region"
	case DimensionSalesperson:
		return "sales_person_name"
	default:
		return ""
	}
}
