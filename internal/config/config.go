package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Источники каталога
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

type Config struct {
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN         string `mapstructure:"DB_DSN"`
	Environment   string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`

	CatalogSource       string `mapstructure:"CATALOG_SOURCE"`
	CatalogPath         string `mapstructure:"CATALOG_PATH"`
	CatalogMajorSheet   string `mapstructure:"CATALOG_MAJOR_SHEET"`
	CatalogGeneralSheet string `mapstructure:"CATALOG_GENERAL_SHEET"`
	MigrationsPath      string `mapstructure:"MIGRATIONS_PATH"`
	FontPath            string `mapstructure:"FONT_PATH"`

	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	SweepInterval  time.Duration `mapstructure:"SWEEP_INTERVAL"`
	ReloadInterval time.Duration `mapstructure:"CATALOG_RELOAD_INTERVAL"`
}

// Load читает конфигурацию из .env и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфигурацию из getenv и проверяет её
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		TelegramToken:       getenv("TELEGRAM_TOKEN"),
		DBDSN:               getenv("DB_DSN"),
		Environment:         getenv("ENV"),
		LogLevel:            getenv("LOG_LEVEL"),
		CatalogSource:       strings.ToLower(strings.TrimSpace(getenv("CATALOG_SOURCE"))),
		CatalogPath:         getenv("CATALOG_PATH"),
		CatalogMajorSheet:   getenv("CATALOG_MAJOR_SHEET"),
		CatalogGeneralSheet: getenv("CATALOG_GENERAL_SHEET"),
		MigrationsPath:      getenv("MIGRATIONS_PATH"),
		FontPath:            getenv("FONT_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.CatalogSource == "" {
		cfg.CatalogSource = sourceFromPath(cfg.CatalogPath)
	}
	if cfg.CatalogMajorSheet == "" {
		cfg.CatalogMajorSheet = "2학기 전공 시간표"
	}
	if cfg.CatalogGeneralSheet == "" {
		cfg.CatalogGeneralSheet = "2학기 교양 시간표"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	var err error
	if cfg.SessionTTL, err = durationOr(getenv, "SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = durationOr(getenv, "SWEEP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.ReloadInterval, err = durationOr(getenv, "CATALOG_RELOAD_INTERVAL", 0); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	switch c.CatalogSource {
	case SourceCSV, SourceXLSX:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required for CATALOG_SOURCE=%s", c.CatalogSource)
		}
	case SourcePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for CATALOG_SOURCE=%s", c.CatalogSource)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (want csv, xlsx or postgres)", c.CatalogSource)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// UsesDatabase сообщает, нужен ли Postgres
func (c *Config) UsesDatabase() bool {
	return c.CatalogSource == SourcePostgres
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func sourceFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return SourceCSV
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return SourceXLSX
	case path == "":
		return SourcePostgres
	default:
		return ""
	}
}

func durationOr(getenv func(string) string, name string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}
