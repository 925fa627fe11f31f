package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Drafts    DraftsConfig    `yaml:"drafts"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,ServiceAuthorization,Secret,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds the secrets used to verify user and service tokens
// and the rules applied to the shared-secret header.
type AuthConfig struct {
	UserTokenSecret    string        `yaml:"user_token_secret"    env:"AUTH_USER_TOKEN_SECRET"    env-required:"true"`
	UserTokenIssuer    string        `yaml:"user_token_issuer"    env:"AUTH_USER_TOKEN_ISSUER"    env-default:"idam"`
	ServiceTokenSecret string        `yaml:"service_token_secret" env:"AUTH_SERVICE_TOKEN_SECRET" env-required:"true"`
	ServiceTokenIssuer string        `yaml:"service_token_issuer" env:"AUTH_SERVICE_TOKEN_ISSUER" env-default:"s2s"`
	TokenTTL           time.Duration `yaml:"token_ttl"            env:"AUTH_TOKEN_TTL"            env-default:"1h"`
	MinSecretLength    int           `yaml:"min_secret_length"    env:"AUTH_MIN_SECRET_LENGTH"    env-default:"16"`
	AllowedServicesRaw string        `yaml:"allowed_services"     env:"AUTH_ALLOWED_SERVICES"`
}

// DraftsConfig holds draft storage limits.
type DraftsConfig struct {
	DefaultPageSize  int `yaml:"default_page_size"  env:"DRAFTS_DEFAULT_PAGE_SIZE"  env-default:"10"`
	MaxPageSize      int `yaml:"max_page_size"      env:"DRAFTS_MAX_PAGE_SIZE"      env-default:"100"`
	MaxDocumentBytes int `yaml:"max_document_bytes" env:"DRAFTS_MAX_DOCUMENT_BYTES" env-default:"1048576"`
	MaxStaleDays     int `yaml:"max_stale_days"     env:"DRAFTS_MAX_STALE_DAYS"     env-default:"90"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits. RequestsPerMinute = 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"600"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// AllowedServices returns the configured service allow-list.
// An empty list means every authenticated service is accepted.
func (c AuthConfig) AllowedServices() []string {
	var services []string
	for _, s := range strings.Split(c.AllowedServicesRaw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	return services
}
