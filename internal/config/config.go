package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SQLite    SQLiteConfig
	Seed      SeedConfig
	Report    ReportConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name       string
	Env        string
	Port       string
	Debug      bool
	DataSource string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	Timezone     string
	MaxIdleConns int
	MaxOpenConns int
}

type SQLiteConfig struct {
	Path string
}

// SeedConfig controls the generated demo data
type SeedConfig struct {
	Enabled bool
	Records int
	Value   int64
}

type ReportConfig struct {
	// Strict rejects unrecognised axis and measure tokens instead of defaulting
	Strict          bool
	DefaultPageSize int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// Load reads configuration from .env and the environment
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "salesreport-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("DATA_SOURCE", DataSourceMemory)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "salesreport")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("SQLITE_PATH", "data/sales.db")
	v.SetDefault("SEED_ENABLED", true)
	v.SetDefault("SEED_RECORDS", 500)
	v.SetDefault("SEED_VALUE", 1)
	v.SetDefault("REPORT_STRICT", false)
	v.SetDefault("REPORT_DEFAULT_PAGE_SIZE", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")
	v.SetDefault("CORS_ALLOWED_HEADERS", "")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
}

func fromViper(v *viper.Viper) *Config {
	setDefaults(v)

	return &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Env:        v.GetString("APP_ENV"),
			Port:       v.GetString("APP_PORT"),
			Debug:      v.GetBool("APP_DEBUG"),
			DataSource: strings.ToLower(v.GetString("DATA_SOURCE")),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			SSLMode:      v.GetString("DB_SSL_MODE"),
			Timezone:     v.GetString("DB_TIMEZONE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("SEED_ENABLED"),
			Records: v.GetInt("SEED_RECORDS"),
			Value:   v.GetInt64("SEED_VALUE"),
		},
		Report: ReportConfig{
			Strict:          v.GetBool("REPORT_STRICT"),
			DefaultPageSize: v.GetInt("REPORT_DEFAULT_PAGE_SIZE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods: splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders: splitList(v.GetString("CORS_ALLOWED_HEADERS")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// Validate reports configuration values the service cannot start with
func (c *Config) Validate() error {
	switch c.App.DataSource {
	case DataSourceMemory, DataSourcePostgres:
	case DataSourceSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required when DATA_SOURCE is %q", DataSourceSQLite)
		}
	default:
		return fmt.Errorf("invalid DATA_SOURCE %q, must be one of %q, %q, %q",
			c.App.DataSource, DataSourceMemory, DataSourcePostgres, DataSourceSQLite)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Duration <= 0 {
		return fmt.Errorf("rate limit requests and duration must be positive")
	}
	if c.Report.DefaultPageSize <= 0 {
		return fmt.Errorf("REPORT_DEFAULT_PAGE_SIZE must be positive")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
