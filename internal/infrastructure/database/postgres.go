package database

import (
	"fmt"
	"log"

	"github.com/sangkips/salesreport-api/internal/config"
	"github.com/sangkips/salesreport-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// seedBatchSize is the number of rows inserted per statement when seeding
const seedBatchSize = 100

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the reporting tables
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&entity.Sale{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedSales inserts the given sales when the sales table is empty.
// An already populated table is left untouched.
func SeedSales(db *gorm.DB, sales []entity.Sale) error {
	var count int64
	if err := db.Model(&entity.Sale{}).Count(&count).Error; err != nil {
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
	if err := db.CreateInBatches(sales, seedBatchSize).Error; err != nil {
		return fmt.Errorf("failed to seed sales: %w", err)
	}

	log.Println("Demo sales seeding completed")
	return nil
}
