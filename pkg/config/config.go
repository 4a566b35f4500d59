package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const minProdSecretLen = 32

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Attendance AttendanceConfig
	Invoicing  InvoicingConfig
	Dashboard  DashboardConfig
	Seed       SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Invoicing.validate(); err != nil {
		return nil, err
	}
	if cfg.App.IsProd() && len(cfg.JWT.Secret) < minProdSecretLen {
		return nil, fmt.Errorf("%s must be at least %d bytes in %s", EnvJWTSecret, minProdSecretLen, AppEnvProd)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FACTORYOPS_APP_ENV" required:"true"`
	Port         string `envconfig:"FACTORYOPS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FACTORYOPS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FACTORYOPS_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is a comma separated allow-list for browser clients.
	CORSOrigins []string `envconfig:"FACTORYOPS_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"FACTORYOPS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FACTORYOPS_JWT_ISSUER" default:"factoryops"`
	ExpirationMinutes int    `envconfig:"FACTORYOPS_JWT_EXPIRATION_MINUTES" default:"480"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// RedisConfig is optional; an empty URL and address disables the idempotency cache.
type RedisConfig struct {
	URL          string        `envconfig:"FACTORYOPS_REDIS_URL"`
	Address      string        `envconfig:"FACTORYOPS_REDIS_ADDR"`
	Password     string        `envconfig:"FACTORYOPS_REDIS_PASSWORD"`
	DB           int           `envconfig:"FACTORYOPS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FACTORYOPS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FACTORYOPS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FACTORYOPS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FACTORYOPS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FACTORYOPS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type AttendanceConfig struct {
	AllowMultipleOpen bool `envconfig:"FACTORYOPS_ATTENDANCE_ALLOW_MULTIPLE_OPEN" default:"true"`
}

type InvoicingConfig struct {
	DueDays int `envconfig:"FACTORYOPS_INVOICE_DUE_DAYS" default:"30"`
}

func (i InvoicingConfig) validate() error {
	if i.DueDays < 0 {
		return fmt.Errorf("%s must not be negative", EnvInvoiceDueDays)
	}
	return nil
}

type DashboardConfig struct {
	LowStockThreshold int `envconfig:"FACTORYOPS_LOW_STOCK_THRESHOLD" default:"50"`
}

type SeedConfig struct {
	Enabled bool   `envconfig:"FACTORYOPS_SEED_ENABLED" default:"true"`
	File    string `envconfig:"FACTORYOPS_SEED_FILE"`
}
