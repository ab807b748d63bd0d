package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Auth        AuthConfig
	Checkout    CheckoutConfig
	AppURL      string
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether a database is configured. Without one the service
// runs in demo mode on the seeded in-memory catalog.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// CheckoutConfig carries the pricing knobs. TaxRate defaults to 0.08, the
// rate the checkout endpoint has always charged; the cart preview uses the
// same rate so the two surfaces agree.
type CheckoutConfig struct {
	TaxRate           float64
	ShippingFlat      float64
	FreeShippingAbove float64
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TOKEN_TTL_MINUTES", "60")
	viper.SetDefault("TAX_RATE", "0.08")
	viper.SetDefault("SHIPPING_FLAT", "5.99")
	viper.SetDefault("FREE_SHIPPING_ABOVE", "50")
	viper.SetDefault("APP_URL", "http://localhost:3000")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	tokenTTL, err := strconv.Atoi(getEnvOrViper("TOKEN_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %w", err)
	}
	taxRate, err := strconv.ParseFloat(getEnvOrViper("TAX_RATE", "0.08"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	shippingFlat, err := strconv.ParseFloat(getEnvOrViper("SHIPPING_FLAT", "5.99"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FLAT: %w", err)
	}
	freeAbove, err := strconv.ParseFloat(getEnvOrViper("FREE_SHIPPING_ABOVE", "50"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FREE_SHIPPING_ABOVE: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", ""),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "casecraft"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrViper("JWT_SECRET", ""),
			TokenTTL:  time.Duration(tokenTTL) * time.Minute,
		},
		Checkout: CheckoutConfig{
			TaxRate:           taxRate,
			ShippingFlat:      shippingFlat,
			FreeShippingAbove: freeAbove,
		},
		AppURL:   getEnvOrViper("APP_URL", "http://localhost:3000"),
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
