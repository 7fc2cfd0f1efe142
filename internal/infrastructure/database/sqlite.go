package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sangkips/salesreport-api/internal/domain/entity"

	_ "modernc.org/sqlite"
)

// SQLiteTimeLayout is the fixed-width UTC text form sale dates are stored in,
// so that string comparison in SQL orders like time comparison
const SQLiteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// FormatSQLiteTime renders t in the stored sale_date form
func FormatSQLiteTime(t time.Time) string {
	return t.UTC().Format(SQLiteTimeLayout)
}

// ParseSQLiteTime parses a stored sale_date value
func ParseSQLiteTime(value string) (time.Time, error) {
	return time.Parse(SQLiteTimeLayout, value)
}

// NewSQLiteDB opens the SQLite database file at path, creating it and its
// directory when missing, and applies the schema migrations
func NewSQLiteDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err := RunSQLiteMigrations(path); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Successfully opened SQLite database at %s", path)
	return db, nil
}

// RunSQLiteMigrations applies the embedded migrations on a separate
// connection, since closing the migrator closes its connection
func RunSQLiteMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SeedSQLiteSales inserts the given sales when the sales table is empty.
// An already populated table is left untouched.
func SeedSQLiteSales(ctx context.Context, db *sql.DB, sales []entity.Sale) error {
	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sales_data").Scan(&count); err != nil {
		return fmt.Errorf("failed to count sales: %w", err)
	}
	if count > 0 {
		log.Printf("Sales table already has %d rows, skipping seed", count)
		return nil
	}
	if len(sales) == 0 {
		return nil
	}

	log.Printf("Seeding %d demo sales...", len(sales))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sales_data
		(id, product_name, category, region, sales_person_name, amount, sale_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sales {
		_, err := stmt.ExecContext(ctx,
			s.ID, s.ProductName, s.Category, s.Region, s.SalesPersonName,
			s.Amount.String(), FormatSQLiteTime(s.SaleDate))
		if err != nil {
			return fmt.Errorf("failed to seed sale %d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	log.Println("Demo sales seeding completed")
	return nil
}
