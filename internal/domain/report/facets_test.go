package report

import (
	"testing"

	"github.com/sangkips/salesreport-api/internal/domain/enum"
)

func TestFacets(t *testing.T) {
	tests := []struct {
		dim  enum.Dimension
		want []string
	}{
		{enum.DimensionCategory, []string{"All", "Books", "Electronics", "Furniture"}},
		{enum.DimensionRegion, []string{"All", "Bandung", "Jakarta", "Medan"}},
		{enum.DimensionSalesperson, []string{"All", "Alice Johnson", "Jane Smith", "John Doe"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dim), func(t *testing.T) {
			if got := Facets(fixtureSales(), tt.dim); !equalStrings(got, tt.want) {
				t.Errorf("Facets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFacets_Empty(t *testing.T) {
	got := Facets(nil, enum.DimensionRegion)
	if !equalStrings(got, []string{AllValue}) {
		t.Errorf("Facets(nil) = %v, want [All]", got)
	}
}

func TestOptions_DeduplicatesAndSorts(t *testing.T) {
	got := Options([]string{"Medan", "Bandung", "Medan", "Jakarta", "Bandung"})
	want := []string{"All", "Bandung", "Jakarta", "Medan"}
	if !equalStrings(got, want) {
		t.Errorf("Options() = %v, want %v", got, want)
	}
}

func TestDistinctValues_FirstSeenOrder(t *testing.T) {
	got := DistinctValues(fixtureSales(), enum.DimensionRegion)
	want := []string{"Jakarta", "Bandung", "Medan"}
	if !equalStrings(got, want) {
		t.Errorf("DistinctValues() = %v, want %v", got, want)
	}
}
