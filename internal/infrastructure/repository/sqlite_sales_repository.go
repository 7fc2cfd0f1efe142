package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"github.com/sangkips/salesreport-api/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-api/internal/domain/repository"
	"github.com/sangkips/salesreport-api/internal/domain/report"
	"github.com/sangkips/salesreport-api/internal/infrastructure/database"
	"github.com/shopspring/decimal"
)

const selectSales = `SELECT id, product_name, category, region, sales_person_name, amount, sale_date FROM sales_data`

type sqliteSalesRepository struct {
	db *sql.DB
}

// NewSQLiteSalesRepository creates a sales repository over a migrated SQLite database
func NewSQLiteSalesRepository(db *sql.DB) domainRepo.SalesRepository {
	return &sqliteSalesRepository{db: db}
}

func (r *sqliteSalesRepository) FetchAll(ctx context.Context) ([]entity.Sale, error) {
	sales, err := r.query(ctx, selectSales+" ORDER BY sale_date DESC")
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}
	return sales, nil
}

func (r *sqliteSalesRepository) FetchFiltered(ctx context.Context, filter *report.Filter) ([]entity.Sale, error) {
	where, args := sqliteFilterClause(filter)
	sales, err := r.query(ctx, selectSales+where+" ORDER BY sale_date DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("fetch filtered sales: %w", err)
	}
	return sales, nil
}

func (r *sqliteSalesRepository) DistinctValues(ctx context.Context, dim enum.Dimension) ([]string, error) {
	column := dim.Column()
	if column == "" {
		return nil, fmt.Errorf("unknown dimension %q", dim)
	}

	// column comes from a closed set, never from input
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT "+column+" FROM sales_data ORDER BY "+column)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	return values, nil
}

func (r *sqliteSalesRepository) query(ctx context.Context, query string, args ...any) ([]entity.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []entity.Sale{}
	for rows.Next() {
		var (
			s      entity.Sale
			amount string
			date   string
		)
		if err := rows.Scan(&s.ID, &s.ProductName, &s.Category, &s.Region, &s.SalesPersonName, &amount, &date); err != nil {
			return nil, err
		}
		if s.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("sale %d amount: %w", s.ID, err)
		}
		if s.SaleDate, err = database.ParseSQLiteTime(date); err != nil {
			return nil, fmt.Errorf("sale %d date: %w", s.ID, err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// sqliteFilterClause builds the WHERE clause for a report filter with the
// same semantics as SalesFilterScope
func sqliteFilterClause(filter *report.Filter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	var (
		conds []string
		args  []any
	)
	if !report.IsUnset(filter.Category) {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if !report.IsUnset(filter.Region) {
		conds = append(conds, "region = ?")
		args = append(args, filter.Region)
	}
	if !report.IsUnset(filter.SalesPerson) {
		conds = append(conds, "sales_person_name = ?")
		args = append(args, filter.SalesPerson)
	}
	if filter.FromDate != nil {
		conds = append(conds, "sale_date >= ?")
		args = append(args, database.FormatSQLiteTime(*filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "sale_date <= ?")
		args = append(args, database.FormatSQLiteTime(*filter.ToDate))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
