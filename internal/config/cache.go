package config

import "time"

// CacheConfig defines settings for the public FAQ response cache.
// When Enabled is false or no Redis client is available, caching is
// disabled and requests pass straight through. Only GET responses are
// cached; TTL is the entry lifetime and MaxBodyBytes caps the size of
// a cached response body.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1048576),
	}
}
