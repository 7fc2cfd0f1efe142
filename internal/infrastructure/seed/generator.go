package seed

import (
	"math/rand"
	"time"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/report"
	"github.com/shopspring/decimal"
)

// DefaultRecords is the number of demo sales generated when none is configured
const DefaultRecords = 500

var (
	categories = []string{"Electronics", "Furniture", "Clothing", "Books", "Home & Garden"}
	regions    = []string{"Jakarta", "Surabaya", "Bandung", "Medan", "Makassar", "Semarang"}
	people     = []string{"John Doe", "Jane Smith", "Bob Wilson", "Alice Johnson", "Mike Brown", "Sarah Davis"}

	products = map[string][]string{
		"Electronics":   {"Laptop Dell", "iPhone 15", "Samsung TV", "Sony Headphones", "iPad Pro", "Gaming Mouse", "Mechanical Keyboard", "Monitor 27 inch", "Tablet Android", "Smartwatch"},
		"Furniture":     {"Office Chair", "Wooden Desk", "Sofa 3 Seater", "Dining Table", "Bookshelf", "Storage Cabinet", "Bed Frame", "Wardrobe", "Coffee Table", "Study Chair"},
		"Clothing":      {"Dress Shirt", "Casual Jeans", "Sports Jacket", "Running Shoes", "Winter Coat", "Summer Dress", "Formal Suit", "Polo Shirt", "Sneakers", "Leather Jacket"},
		"Books":         {"Programming Guide", "Business Strategy", "Self Help Book", "History Novel", "Science Fiction", "Cookbook", "Art Book", "Travel Guide", "Biography", "Educational Textbook"},
		"Home & Garden": {"Garden Tools", "Kitchen Set", "Dining Set", "Plant Pot", "Lawn Mower", "Garden Hose", "Outdoor Light", "BBQ Grill", "Patio Furniture", "Flower Seeds"},
	}

	// [min, max) amount per category
	amountRanges = map[string][2]int64{
		"Electronics":   {500_000, 20_000_000},
		"Furniture":     {300_000, 8_000_000},
		"Clothing":      {100_000, 2_000_000},
		"Books":         {50_000, 500_000},
		"Home & Garden": {200_000, 3_000_000},
	}
)

// Options controls demo data generation
type Options struct {
	Records int
	Seed    int64
	// End is the reference time; sales fall on UTC midnights in the year
	// before its UTC day
	End time.Time
}

// Generate returns demo sales, newest first. The same options always produce
// the same records.
func Generate(opts Options) []entity.Sale {
	if opts.Records <= 0 {
		opts.Records = DefaultRecords
	}
	if opts.End.IsZero() {
		opts.End = time.Now()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	end := opts.End.UTC()
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(-1, 0, 0)

	sales := make([]entity.Sale, 0, opts.Records)
	for i := 0; i < opts.Records; i++ {
		category := pick(rng, categories)
		bounds := amountRanges[category]

		sales = append(sales, entity.Sale{
			ID:              i + 1,
			ProductName:     pick(rng, products[category]),
			Category:        category,
			Region:          pick(rng, regions),
			SalesPersonName: pick(rng, people),
			Amount:          decimal.NewFromInt(bounds[0] + rng.Int63n(bounds[1]-bounds[0])),
			SaleDate:        start.AddDate(0, 0, rng.Intn(365)),
		})
	}

	return report.SortByDateDesc(sales)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
