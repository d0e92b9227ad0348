// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	GinMode     string `envconfig:"GIN_MODE" default:"debug"`
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT"`

	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" required:"true"`
	RedisURI      string `envconfig:"REDIS_URI" default:"redis://localhost:6379/0"`

	JWTSecret    string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiry    time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
	UserCacheTTL time.Duration `envconfig:"USER_CACHE_TTL" default:"5m"`

	S3Endpoint        string        `envconfig:"S3_ENDPOINT" default:"localhost:9000"`
	S3Region          string        `envconfig:"S3_REGION" default:"us-east-1"`
	S3AccessKey       string        `envconfig:"S3_ACCESS_KEY" default:"minioadmin"`
	S3SecretKey       string        `envconfig:"S3_SECRET_KEY" default:"minioadmin"`
	S3Bucket          string        `envconfig:"S3_BUCKET" default:"braik-documents"`
	S3UseSSL          bool          `envconfig:"S3_USE_SSL" default:"false"`
	DocumentURLExpiry time.Duration `envconfig:"DOCUMENT_URL_EXPIRY" default:"15m"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	AuditQueueSize int `envconfig:"AUDIT_QUEUE_SIZE" default:"1024"`
	AuditWorkers   int `envconfig:"AUDIT_WORKERS" default:"2"`

	AIDefaultCredits int64         `envconfig:"AI_DEFAULT_CREDITS" default:"100000"`
	AssistantDelay   time.Duration `envconfig:"ASSISTANT_SIMULATED_DELAY" default:"0s"`
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.AuditWorkers < 1 {
		return nil, fmt.Errorf("load config: AUDIT_WORKERS must be at least 1, got %d", cfg.AuditWorkers)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in production. Cookies are
// marked Secure only there.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
