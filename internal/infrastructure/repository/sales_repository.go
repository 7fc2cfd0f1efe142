package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-api/internal/domain/repository"
	"github.com/sangkips/salesreport-api/internal/domain/report"
	"gorm.io/gorm"
)

type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a sales repository backed by the sales_data table
func NewSalesRepository(db *gorm.DB) domainRepo.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) FetchAll(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Order("sale_date DESC").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}
	return sales, nil
}

func (r *salesRepository) FetchFiltered(ctx context.Context, filter *report.Filter) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.filteredQuery(ctx, filter).Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("fetch filtered sales: %w", err)
	}
	return sales, nil
}

func (r *salesRepository) DistinctValues(ctx context.Context, dim enum.Dimension) ([]string, error) {
	column := dim.Column()
	if column == "" {
		return nil, fmt.Errorf("unknown dimension %q", dim)
	}

	var values []string
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Distinct().
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	return values, nil
}

func (r *salesRepository) filteredQuery(ctx context.Context, filter *report.Filter) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Scopes(SalesFilterScope(filter)).
		Order("sale_date DESC")
}
