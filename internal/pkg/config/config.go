package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host      string `env:"HOST,       default=0.0.0.0"`
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	StaticDir string `env:"STATIC_DIR, default=./public"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
	AuditTimezone   string        `env:"AUDIT_TIMEZONE,   default=Asia/Taipei"`

	Auth    AuthConfig
	Storage StorageConfig
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET"`
	AdminTokenTTL time.Duration `env:"ADMIN_TOKEN_TTL, default=2h"`
	UserTokenTTL  time.Duration `env:"USER_TOKEN_TTL,  default=24h"`
	BcryptCost    int           `env:"BCRYPT_COST,     default=10"`
}

type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND, default=file"`
	DataDir string `env:"DATA_DIR,        default=./data"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Prefix   string `env:"REDIS_PREFIX,   default=storefront:"`
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// AuditLocation resolves AuditTimezone, falling back to the local zone.
func (c *Config) AuditLocation() *time.Location {
	if c.AuditTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.AuditTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ValidateServe checks the settings only the HTTP server needs.
func (c *Config) ValidateServe() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

// Load reads configuration from environment variables. Outside production a
// .env file in the working directory is applied first; real environment
// variables win over it.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load()
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
