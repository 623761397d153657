package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendSQLite   = "sqlite"

	MessagingProviderMock     = "mock"
	MessagingProviderTelegram = "telegram"
)

// Config is the process configuration, read from the environment.
// A .env file is loaded beforehand by cmd/api through godotenv/autoload.
type Config struct {
	Port      int
	LogLevel  string
	LogPretty bool

	JWTSecret string

	Store    StoreConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Listing  ListingConfig
	Provider ProviderConfig
	Payments PaymentsConfig
}

type StoreConfig struct {
	Backend      string
	SQLitePath   string
	RecordsTable string
	Dynamo       DynamoConfig
}

// DynamoConfig defaults suit DynamoDB Local, which ignores credentials.
type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	CreateTables    bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether connection sessions should live in Redis instead of memory.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CatalogConfig struct {
	Path string
}

type ListingConfig struct {
	PageSize int
}

type ProviderConfig struct {
	Name             string
	TelegramToken    string
	TelegramBotName  string
	TelegramRate     float64
	MockPairingDelay time.Duration
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
	CurrencyID             string
}

// Load reads the configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogPretty: isTruthy(os.Getenv("LOG_PRETTY")),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Store: StoreConfig{
			Backend:      strings.ToLower(getenvDefault("STORE_BACKEND", StoreBackendDynamoDB)),
			SQLitePath:   getenvDefault("SQLITE_PATH", "./data/motomind.db"),
			RecordsTable: getenvDefault("RECORDS_TABLE", "service_records"),
			Dynamo: DynamoConfig{
				Region:          getenvDefault("AWS_REGION", "us-east-1"),
				Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
				AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
				SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
				CreateTables:    isTruthy(os.Getenv("DYNAMODB_CREATE_TABLES")),
			},
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Catalog: CatalogConfig{Path: os.Getenv("CATALOG_PATH")},
		Provider: ProviderConfig{
			Name:            strings.ToLower(getenvDefault("MESSAGING_PROVIDER", MessagingProviderMock)),
			TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
			TelegramBotName: os.Getenv("TELEGRAM_BOT_NAME"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
			CurrencyID:             getenvDefault("CURRENCY_ID", "PKR"),
		},
	}

	var err error
	if cfg.Port, err = intFromEnv("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = intFromEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.Listing.PageSize, err = intFromEnv("PAGE_SIZE", 10); err != nil {
		return Config{}, err
	}
	if cfg.Listing.PageSize < 1 {
		return Config{}, fmt.Errorf("invalid PAGE_SIZE: must be >= 1, got %d", cfg.Listing.PageSize)
	}

	cfg.Provider.TelegramRate = 1
	if v := os.Getenv("TELEGRAM_RATE_PER_SECOND"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return Config{}, fmt.Errorf("invalid TELEGRAM_RATE_PER_SECOND: %q", v)
		}
		cfg.Provider.TelegramRate = rate
	}

	cfg.Provider.MockPairingDelay = 3 * time.Second
	if v := os.Getenv("MOCK_PAIRING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MOCK_PAIRING_DELAY: %w", err)
		}
		cfg.Provider.MockPairingDelay = d
	}

	switch cfg.Store.Backend {
	case StoreBackendDynamoDB, StoreBackendSQLite:
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND: %q", cfg.Store.Backend)
	}
	switch cfg.Provider.Name {
	case MessagingProviderMock:
	case MessagingProviderTelegram:
		if cfg.Provider.TelegramToken == "" {
			return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required when MESSAGING_PROVIDER=telegram")
		}
	default:
		return Config{}, fmt.Errorf("invalid MESSAGING_PROVIDER: %q", cfg.Provider.Name)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
