package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesreport-api/internal/application/service"
	"github.com/sangkips/salesreport-api/internal/config"
	"github.com/sangkips/salesreport-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salesreport-api/internal/domain/repository"
	"github.com/sangkips/salesreport-api/internal/infrastructure/database"
	"github.com/sangkips/salesreport-api/internal/infrastructure/repository"
	"github.com/sangkips/salesreport-api/internal/infrastructure/seed"
	"github.com/sangkips/salesreport-api/internal/presentation/http/handler"
	"github.com/sangkips/salesreport-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	salesRepo, err := newSalesRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize sales data: %v", err)
	}

	reportService := service.NewReportService(salesRepo, service.ReportOptions{
		Strict:          cfg.Report.Strict,
		DefaultPageSize: cfg.Report.DefaultPageSize,
	})

	handlers := &routes.Handlers{
		Report: handler.NewReportHandler(reportService),
	}

	router, rateLimiter := routes.Setup(handlers, &routes.Deps{Cfg: cfg})
	defer rateLimiter.Stop()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, data source: %s", cfg.App.Env, cfg.App.DataSource)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newSalesRepository builds the configured record source
func newSalesRepository(cfg *config.Config) (domainRepo.SalesRepository, error) {
	demoSales := func() []entity.Sale {
		return seed.Generate(seed.Options{Records: cfg.Seed.Records, Seed: cfg.Seed.Value, End: time.Now()})
	}

	switch cfg.App.DataSource {
	case config.DataSourceSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.Seed.Enabled {
			if err := database.SeedSQLiteSales(context.Background(), db, demoSales()); err != nil {
				log.Printf("Warning: Failed to seed sales data: %v", err)
			}
		}
		return repository.NewSQLiteSalesRepository(db), nil

	case config.DataSourcePostgres:
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		if cfg.Seed.Enabled {
			if err := database.SeedSales(db, demoSales()); err != nil {
				log.Printf("Warning: Failed to seed sales data: %v", err)
			}
		}
		return repository.NewSalesRepository(db), nil

	default:
		sales := demoSales()
		log.Printf("Using in-memory sales data (%d records)", len(sales))
		return repository.NewMemorySalesRepository(sales), nil
	}
}
