package report

import (
	"math"
	"testing"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func TestPaginate_FirstPage(t *testing.T) {
	page := Paginate(fixtureSales(), 1, 4)

	if got, want := ids(page.Items), []int{5, 4, 6, 2}; !equalInts(got, want) {
		t.Errorf("items = %v, want %v", got, want)
	}
	if page.TotalItems != 6 || page.TotalPages != 2 {
		t.Errorf("TotalItems=%d TotalPages=%d, want 6 and 2", page.TotalItems, page.TotalPages)
	}
	if page.HasPrevious || !page.HasNext {
		t.Errorf("HasPrevious=%v HasNext=%v, want false and true", page.HasPrevious, page.HasNext)
	}
	if !page.TotalSales.Equal(decimal.RequireFromString("3030.5")) {
		t.Errorf("TotalSales = %s, want 3030.5", page.TotalSales)
	}
	if page.TotalTransactions != 6 {
		t.Errorf("TotalTransactions = %d, want 6", page.TotalTransactions)
	}
}

func TestPaginate_CoversEverySaleOnce(t *testing.T) {
	sales := fixtureSales()
	want := ids(SortByDateDesc(sales))

	for _, size := range []int{1, 2, 4, 5, 6, 10} {
		first := Paginate(sales, 1, size)
		var got []int
		for p := 1; p <= first.TotalPages; p++ {
			page := Paginate(sales, p, size)
			got = append(got, ids(page.Items)...)

			if !page.TotalSales.Equal(first.TotalSales) ||
				!page.AverageSale.Equal(first.AverageSale) ||
				page.TotalTransactions != first.TotalTransactions {
				t.Errorf("size %d page %d: summary differs from page 1", size, p)
			}
		}
		if !equalInts(got, want) {
			t.Errorf("size %d: pages concatenate to %v, want %v", size, got, want)
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	page := Paginate(fixtureSales(), 9, 4)
	if len(page.Items) != 0 {
		t.Errorf("items = %v, want none", ids(page.Items))
	}
	if page.TotalItems != 6 || page.TotalTransactions != 6 {
		t.Errorf("totals should still describe the whole set, got %+v", page)
	}
	if page.HasNext || !page.HasPrevious {
		t.Errorf("HasNext=%v HasPrevious=%v, want false and true", page.HasNext, page.HasPrevious)
	}

	low := Paginate(fixtureSales(), 0, 4)
	if low.CurrentPage != 1 || len(low.Items) != 4 {
		t.Errorf("page 0 should be treated as page 1, got page %d with %d items", low.CurrentPage, len(low.Items))
	}

	sized := Paginate(fixtureSales(), 1, 0)
	if sized.PageSize <= 0 {
		t.Errorf("PageSize = %d, want a positive default", sized.PageSize)
	}
}

func TestPaginate_HugePageNumber(t *testing.T) {
	for _, size := range []int{1, 10, 100} {
		page := Paginate(fixtureSales(), math.MaxInt, size)
		if len(page.Items) != 0 {
			t.Errorf("size %d: items = %v, want none", size, ids(page.Items))
		}
		if page.CurrentPage != math.MaxInt || page.TotalItems != 6 {
			t.Errorf("size %d: CurrentPage=%d TotalItems=%d", size, page.CurrentPage, page.TotalItems)
		}
		if !page.TotalSales.Equal(decimal.RequireFromString("3030.5")) {
			t.Errorf("size %d: TotalSales = %s, want 3030.5", size, page.TotalSales)
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate(nil, 1, 10)
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", page.Items)
	}
	if page.TotalPages != 0 || page.TotalItems != 0 {
		t.Errorf("TotalPages=%d TotalItems=%d, want 0", page.TotalPages, page.TotalItems)
	}
	if !page.AverageSale.IsZero() || !page.TotalSales.IsZero() {
		t.Errorf("summary of empty set should be zero, got %s / %s", page.TotalSales, page.AverageSale)
	}
	if page.HasNext || page.HasPrevious {
		t.Error("empty set should have neither next nor previous page")
	}
}

func TestSortByDateDesc_StableOnTies(t *testing.T) {
	same := date(2024, 5, 5)
	sales := []entity.Sale{
		sale(1, "A", "C", "R", "P", "1", same),
		sale(2, "A", "C", "R", "P", "1", date(2024, 6, 1)),
		sale(3, "A", "C", "R", "P", "1", same),
	}

	got := ids(SortByDateDesc(sales))
	if want := []int{2, 1, 3}; !equalInts(got, want) {
		t.Errorf("SortByDateDesc() = %v, want %v", got, want)
	}
	if sales[0].ID != 1 || sales[1].ID != 2 {
		t.Error("SortByDateDesc modified its input")
	}
}
