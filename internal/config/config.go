package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	// Infrastructure
	DBAddr        string
	RedisAddr     string // optional: empty disables rate limiting
	RedisPassword string
	RedisDB       int
	RabbitURL     string // optional: empty falls back to the noop publisher

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// Per-route fixed-window limits for register/login.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads the process configuration once at startup. A .env file is
// honored when present; the resulting Config is immutable for the
// process lifetime.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}

	// optional with defaults
	ttl, err := getDuration("ACCESS_TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = ttl

	cost, err := getInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost = cost

	// Optional backing services. The service degrades gracefully
	// without them, so absence is not an error.
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	rdb, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = rdb
	cfg.RabbitURL = os.Getenv("RABBIT_URL")

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	rl, err := getInt("AUTH_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	cfg.AuthRateLimit = rl

	rw, err := getDuration("AUTH_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.AuthRateWindow = rw

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}
