package report

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// TopProductsLimit caps the number of groups on the product axis
const TopProductsLimit = 10

// Point is one labelled value of a chart series
type Point struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Series is an ordered list of points. Order is part of the result.
type Series []Point

// Labels returns the point labels in series order
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the point values in series order
func (s Series) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

type group struct {
	label   string
	month   time.Time
	sales   []entity.Sale
	measure decimal.Decimal
}

// Aggregate groups sales along the axis, computes the measure for each group
// and orders the groups by the axis policy:
//   - month: chronological
//   - category, region, salesperson: ascending by key
//   - product: descending by measure, first-seen order on ties, top 10 only
//
// An unknown axis or empty input yields an empty series.
func Aggregate(sales []entity.Sale, axis enum.Axis, measure enum.Measure) Series {
	keyOf := axisKey(axis)
	if keyOf == nil || len(sales) == 0 {
		return Series{}
	}

	index := make(map[string]int)
	groups := make([]*group, 0)
	for _, sale := range sales {
		key := keyOf(&sale)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			g := &group{label: key}
			if axis == enum.AxisMonth {
				g.month = time.Date(sale.SaleDate.Year(), sale.SaleDate.Month(), 1, 0, 0, 0, 0, time.UTC)
			}
			groups = append(groups, g)
		}
		groups[i].sales = append(groups[i].sales, sale)
	}

	for _, g := range groups {
		g.measure = Measure(g.sales, measure)
	}

	switch axis {
	case enum.AxisMonth:
		slices.SortStableFunc(groups, func(a, b *group) int {
			return a.month.Compare(b.month)
		})
	case enum.AxisProduct:
		slices.SortStableFunc(groups, func(a, b *group) int {
			return b.measure.Cmp(a.measure)
		})
		if len(groups) > TopProductsLimit {
			groups = groups[:TopProductsLimit]
		}
	default:
		slices.SortStableFunc(groups, func(a, b *group) int {
			return strings.Compare(a.label, b.label)
		})
	}

	series := make(Series, 0, len(groups))
	for _, g := range groups {
		series = append(series, Point{Label: g.label, Value: g.measure})
	}
	return series
}

// Measure computes the measure over a group of sales. The average of an
// empty group is zero; an unspecified measure sums amounts.
func Measure(sales []entity.Sale, measure enum.Measure) decimal.Decimal {
	switch measure {
	case enum.MeasureCount:
		return decimal.NewFromInt(int64(len(sales)))
	case enum.MeasureAverage:
		return average(sales)
	default:
		return sum(sales)
	}
}

func sum(sales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Amount)
	}
	return total
}

func average(sales []entity.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return sum(sales).Div(decimal.NewFromInt(int64(len(sales))))
}

// MonthLabel formats the month of t as YYYY-MM
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}

func axisKey(axis enum.Axis) func(*entity.Sale) string {
	switch axis {
	case enum.AxisMonth:
		return func(s *entity.Sale) string { return MonthLabel(s.SaleDate) }
	case enum.AxisCategory:
		return func(s *entity.Sale) string { return s.Category }
	case enum.AxisRegion:
		return func(s *entity.Sale) string { return s.Region }
	case enum.AxisSalesperson:
		return func(s *entity.Sale) string { return s.SalesPersonName }
	case enum.AxisProduct:
		return func(s *entity.Sale) string { return s.ProductName }
	default:
		return nil
	}
}
