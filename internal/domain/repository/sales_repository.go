package repository

import (
	"context"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/enum"
	"github.com/sangkips/salesreport-api/internal/domain/report"
)

// SalesRepository is a read-only source of sales records
type SalesRepository interface {
	// FetchAll returns every sale in the reporting period
	FetchAll(ctx context.Context) ([]entity.Sale, error)

	// FetchFiltered returns the sales matching the filter. Ordering is not
	// guaranteed; callers sort where order matters.
	FetchFiltered(ctx context.Context, filter *report.Filter) ([]entity.Sale, error)

	// DistinctValues returns each value of a facet dimension once, in no
	// particular order
	DistinctValues(ctx context.Context, dim enum.Dimension) ([]string, error)
}
