package config // package config loads application configuration from environment variables

import (
	"fmt"     // fmt reports invalid values with the offending key
	"strconv" // strconv validates the port number
	"strings" // strings trims the greeting text
	"time"    // time types the shutdown timeout

	"github.com/joho/godotenv" // godotenv loads a local .env file when present

	"github.com/iliyamo/greeting-service/internal/model" // model provides the default greeting text
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; every field has a default so the service starts
// with no environment at all.
type Config struct {
	Env             string          // application environment (e.g. "dev", "prod")
	Host            string          // network interface to bind
	Port            string          // HTTP port to listen on
	Greeting        string          // text returned in the message field of GET /api
	ShutdownTimeout time.Duration   // how long in-flight requests may drain on stop
	LogLevel        string          // echo logger level: debug, info, warn, error, off
	RateLimit       RateLimitConfig // optional token bucket on GET /api
}

// Addr returns the host:port pair the HTTP server binds to.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads a .env file from the working directory if one exists and then
// builds a Config from the environment.  A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load() // existing environment variables win over .env entries
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.  The first
// invalid value found is returned as an error naming its variable.
func FromEnv() (Config, error) {
	r := &envReader{}
	cfg := Config{
		Env:             envStr("APP_ENV", "dev"),
		Host:            envStr("APP_HOST", "0.0.0.0"),
		Port:            envStr("APP_PORT", "5000"),
		Greeting:        strings.TrimSpace(envStr("GREETING_MESSAGE", model.DefaultMessage)),
		ShutdownTimeout: r.positiveDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		LogLevel:        strings.ToLower(envStr("LOG_LEVEL", "info")),
	}
	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		return Config{}, fmt.Errorf("invalid APP_PORT %q: must be a number in 1..65535", cfg.Port)
	}
	if cfg.Greeting == "" {
		cfg.Greeting = model.DefaultMessage
	}
	cfg.RateLimit = loadRateLimit(r)
	if r.err != nil {
		return Config{}, r.err
	}
	return cfg, nil
}
