package repository

import (
	"context"
	"slices"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-api/internal/domain/repository"
	"github.com/sangkips/salesreport-api/internal/domain/report"
)

type memorySalesRepository struct {
	sales []entity.Sale
}

// NewMemorySalesRepository creates a sales repository over a fixed snapshot.
// The slice is copied, so later changes by the caller are not observed.
func NewMemorySalesRepository(sales []entity.Sale) domainRepo.SalesRepository {
	return &memorySalesRepository{sales: slices.Clone(sales)}
}

func (r *memorySalesRepository) FetchAll(ctx context.Context) ([]entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.sales), nil
}

func (r *memorySalesRepository) FetchFiltered(ctx context.Context, filter *report.Filter) ([]entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return report.Apply(r.sales, filter), nil
}

func (r *memorySalesRepository) DistinctValues(ctx context.Context, dim enum.Dimension) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return report.DistinctValues(r.sales, dim), nil
}
