// Package config handles configuration loading for the blog service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinJWTSecretLength is the minimum HS256 key size accepted at startup.
const MinJWTSecretLength = 32

// Config holds all configuration for the blog service.
type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	DBAutoMigrate  bool
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	JWTSecret      string
	JWTExpiry      time.Duration
	Port           string
	Environment    string
	AllowedOrigins []string
	CookieDomain   string
	CookieSecure   bool
	SwaggerHost    string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present. All missing required
// variables are reported in a single error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		DBDriver:       env.get("DB_DRIVER", "postgres"),
		DBSSLMode:      env.get("DB_SSLMODE", "disable"),
		DBAutoMigrate:  env.bool("DB_AUTO_MIGRATE", true),
		RedisHost:      env.required("REDIS_HOST"),
		RedisPort:      env.get("REDIS_PORT", "6379"),
		RedisPassword:  env.get("REDIS_PASSWORD", ""),
		JWTSecret:      env.required("JWT_SECRET"),
		JWTExpiry:      parseDuration(env.get("JWT_EXPIRY", "24h"), 24*time.Hour),
		Port:           env.get("PORT", "8080"),
		Environment:    env.get("ENVIRONMENT", "development"),
		AllowedOrigins: splitList(env.get("ALLOWED_ORIGINS", "http://localhost:5173")),
		CookieDomain:   env.get("COOKIE_DOMAIN", ""),
		CookieSecure:   env.bool("COOKIE_SECURE", false),
		SwaggerHost:    env.get("SWAGGER_HOST", ""),
	}

	switch cfg.DBDriver {
	case "postgres":
		cfg.DBHost = env.required("DB_HOST")
		cfg.DBPort = env.get("DB_PORT", "5432")
		cfg.DBUser = env.required("DB_USER")
		cfg.DBPassword = env.required("DB_PASSWORD")
		cfg.DBName = env.required("DB_NAME")
	case "sqlite":
		cfg.DBPath = env.get("DB_PATH", "data/blog.db")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if len(env.missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(env.missing, ", "))
	}
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	}
	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type envReader struct {
	missing []string
}

func (e *envReader) get(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func (e *envReader) required(key string) string {
	v := os.Getenv(key)
	if v == "" {
		e.missing = append(e.missing, key)
	}
	return v
}

func (e *envReader) bool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(e.get(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
