package report

import (
	"testing"
	"time"
)

func TestApply(t *testing.T) {
	from := date(2024, 2, 1)
	to := date(2024, 2, 28)
	tooEarly := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter *Filter
		want   []int
	}{
		{"nil filter keeps everything", nil, []int{1, 2, 3, 4, 5, 6}},
		{"empty filter keeps everything", &Filter{}, []int{1, 2, 3, 4, 5, 6}},
		{"category", &Filter{Category: "Books"}, []int{1, 2, 6}},
		{"region", &Filter{Region: "Jakarta"}, []int{1, 3}},
		{"salesperson", &Filter{SalesPerson: "John Doe"}, []int{2, 3}},
		{"conjunction", &Filter{Category: "Electronics", SalesPerson: "Jane Smith"}, []int{5}},
		{"from date inclusive", &Filter{FromDate: &from}, []int{2, 4, 5, 6}},
		{"to date inclusive", &Filter{ToDate: &to}, []int{1, 2, 3, 6}},
		{"date range", &Filter{FromDate: &from, ToDate: &to}, []int{2, 6}},
		{"unknown value yields empty", &Filter{Region: "Atlantis"}, []int{}},
		{"to before every sale", &Filter{ToDate: &tooEarly}, []int{}},
		{"category is case sensitive", &Filter{Category: "books"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(fixtureSales(), tt.filter))
			if !equalInts(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_SentinelEquivalence(t *testing.T) {
	sales := fixtureSales()
	none := ids(Apply(sales, &Filter{}))

	for _, f := range []*Filter{
		{Category: AllValue},
		{Category: ""},
		{Region: AllValue, SalesPerson: AllValue},
		nil,
	} {
		if got := ids(Apply(sales, f)); !equalInts(got, none) {
			t.Errorf("Apply(%+v) = %v, want %v", f, got, none)
		}
	}
}

func TestApply_AddingConstraintNeverGrows(t *testing.T) {
	sales := fixtureSales()
	from := date(2024, 1, 15)

	steps := []*Filter{
		{},
		{Category: "Electronics"},
		{Category: "Electronics", Region: "Bandung"},
		{Category: "Electronics", Region: "Bandung", FromDate: &from},
		{Category: "Electronics", Region: "Bandung", FromDate: &from, SalesPerson: "John Doe"},
	}

	prev := len(sales) + 1
	for _, f := range steps {
		got := Apply(sales, f)
		if len(got) > prev {
			t.Fatalf("Apply(%+v) returned %d sales, previous step had %d", f, len(got), prev)
		}
		for _, s := range got {
			if !f.Matches(&s) {
				t.Errorf("sale %d does not match %+v", s.ID, f)
			}
		}
		prev = len(got)
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	sales := fixtureSales()
	before := ids(sales)

	out := Apply(sales, &Filter{Category: "Books"})
	if len(out) > 0 {
		out[0].Category = "changed"
	}

	if !equalInts(ids(sales), before) || sales[0].Category != "Books" {
		t.Error("Apply modified its input")
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	now := time.Now()
	if !(*Filter)(nil).IsEmpty() {
		t.Error("nil filter should be empty")
	}
	if !(&Filter{Category: AllValue}).IsEmpty() {
		t.Error("sentinel-only filter should be empty")
	}
	if (&Filter{ToDate: &now}).IsEmpty() {
		t.Error("filter with a date bound should not be empty")
	}
}
