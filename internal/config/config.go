package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from the environment,
// an optional .env file, and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	JWTSecret          string
	TokenTTL           time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	OrderCreateRetries int
	NextServiceKM      int
	NextServiceMonths  int
}

const (
	defaultRunAddress         = ":8080"
	defaultJWTSecret          = "change-me-in-production"
	defaultTokenTTL           = 24 * time.Hour
	defaultShutdownTimeout    = 10 * time.Second
	defaultOrderCreateRetries = 5
	defaultNextServiceKM      = 10000
	defaultNextServiceMonths  = 6
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	// Missing .env is fine; containerized deployments set the environment directly.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		JWTSecret:          getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:           getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		OrderCreateRetries: getInt(lookup, "ORDER_CREATE_RETRIES", defaultOrderCreateRetries),
		NextServiceKM:      getInt(lookup, "NEXT_SERVICE_KM", defaultNextServiceKM),
		NextServiceMonths:  getInt(lookup, "NEXT_SERVICE_MONTHS", defaultNextServiceMonths),
	}

	origins := getString(lookup, "CORS_ALLOWED_ORIGINS", "*")

	fs := flag.NewFlagSet("carsline", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&origins, "cors-origins", origins, "Comma separated list of allowed CORS origins")
	fs.IntVar(&cfg.OrderCreateRetries, "order-retries", cfg.OrderCreateRetries, "Attempts per order creation on number conflicts")
	fs.IntVar(&cfg.NextServiceKM, "next-service-km", cfg.NextServiceKM, "Projected mileage until the next service")
	fs.IntVar(&cfg.NextServiceMonths, "next-service-months", cfg.NextServiceMonths, "Projected months until the next service")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrderCreateRetries <= 0 {
		cfg.OrderCreateRetries = defaultOrderCreateRetries
	}

	if cfg.NextServiceKM <= 0 {
		cfg.NextServiceKM = defaultNextServiceKM
	}

	if cfg.NextServiceMonths <= 0 {
		cfg.NextServiceMonths = defaultNextServiceMonths
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
