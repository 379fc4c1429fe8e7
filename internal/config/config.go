package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Failure policies for upstream fetches. "degrade" substitutes generated
// sample data on any upstream failure; "strict" surfaces the error.
const (
	FailurePolicyDegrade = "degrade"
	FailurePolicyStrict  = "strict"
)

type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Cache     CacheConfig
	Generator GeneratorConfig
	Demo      DemoConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

type UpstreamConfig struct {
	// BaseURL of the remote sales API.
	BaseURL string
	// AuthorizePath issues the bearer token, SalesPath serves the data.
	AuthorizePath string
	SalesPath     string
	Timeout       time.Duration
	// Enabled selects the real API; when false every query is answered by
	// the local generator without touching the network.
	Enabled bool
	// FallbackToken is used whenever token acquisition fails.
	FallbackToken string
	// FailurePolicy is FailurePolicyDegrade or FailurePolicyStrict.
	FailurePolicy string
}

type CacheConfig struct {
	// TTL is the freshness window after which an entry is refetched in
	// the background while the stale value keeps being served.
	TTL time.Duration
	// Retention bounds how long a stale entry stays servable.
	Retention time.Duration
}

type GeneratorConfig struct {
	// Latency is the artificial delay emulating network behavior.
	Latency time.Duration
}

// DemoConfig configures the bundled stand-in for the upstream sales API
type DemoConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Upstream: UpstreamConfig{
			BaseURL:       getEnv("SALES_API_BASE_URL", "http://localhost:9090"),
			AuthorizePath: getEnv("SALES_API_AUTHORIZE_PATH", "/getAuthorize"),
			SalesPath:     getEnv("SALES_API_SALES_PATH", "/sales"),
			Timeout:       getDurationEnv("SALES_API_TIMEOUT", 10*time.Second),
			Enabled:       getBoolEnv("SALES_API_ENABLED", true),
			FallbackToken: getEnv("SALES_API_FALLBACK_TOKEN", "demo-token"),
			FailurePolicy: getEnv("SALES_API_FAILURE_POLICY", FailurePolicyDegrade),
		},
		Cache: CacheConfig{
			TTL:       getDurationEnv("QUERY_CACHE_TTL", 60*time.Second),
			Retention: getDurationEnv("QUERY_CACHE_RETENTION", 10*time.Minute),
		},
		Generator: GeneratorConfig{
			Latency: getDurationEnv("GENERATOR_LATENCY", 600*time.Millisecond),
		},
		Demo: DemoConfig{
			Port:      getEnv("DEMO_API_PORT", "9090"),
			JWTSecret: getEnv("DEMO_API_JWT_SECRET", "demo-secret-change-me"),
			TokenTTL:  getDurationEnv("DEMO_API_TOKEN_TTL", time.Hour),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Upstream.FailurePolicy {
	case FailurePolicyDegrade, FailurePolicyStrict:
	default:
		return fmt.Errorf("invalid SALES_API_FAILURE_POLICY %q, must be %q or %q",
			c.Upstream.FailurePolicy, FailurePolicyDegrade, FailurePolicyStrict)
	}

	if c.Cache.Retention < c.Cache.TTL {
		return fmt.Errorf("QUERY_CACHE_RETENTION (%s) must not be shorter than QUERY_CACHE_TTL (%s)",
			c.Cache.Retention, c.Cache.TTL)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
