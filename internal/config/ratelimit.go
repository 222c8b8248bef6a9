package config

import (
	"fmt"
	"strings"
	"time"
)

// RateLimitConfig controls the optional Redis token bucket on GET /api.  It
// is disabled unless RATE_LIMIT_ENABLED is truthy.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration // bucket expiry; at least 1s and 5 refill intervals
	KeyStrategy    string        // ip, route or ip_route
	Prefix         string
	Debug          bool
}

// minBucketTTL is the shortest expiry a bucket may be given.  Anything lower
// lets Redis drop the bucket between requests so it never empties.
const minBucketTTL = time.Second

// loadRateLimit reads the RATE_LIMIT_* variables through r.  Values that do
// not parse, or that are not positive, are reported by r.
func loadRateLimit(r *envReader) RateLimitConfig {
	rl := RateLimitConfig{
		Enabled:        r.bool("RATE_LIMIT_ENABLED", false),
		Capacity:       r.positiveInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   r.positiveInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: r.positiveDuration("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            r.positiveDuration("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    strings.ToLower(envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route")),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
		Debug:          r.bool("RATE_LIMIT_DEBUG", false),
	}
	switch rl.KeyStrategy {
	case "ip", "route", "ip_route":
	default:
		r.fail(fmt.Errorf("invalid RATE_LIMIT_KEY_STRATEGY %q: want ip, route or ip_route", rl.KeyStrategy))
	}
	if floor := 5 * rl.RefillInterval; rl.TTL < floor {
		rl.TTL = floor
	}
	if rl.TTL < minBucketTTL {
		rl.TTL = minBucketTTL
	}
	return rl
}
