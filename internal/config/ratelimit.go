package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to the public
// write endpoints (booking and contact creation). When disabled, or when no
// Redis client could be constructed, the limiter degrades open.
type RateLimitConfig struct {
	Enabled bool          // master switch
	Limit   int           // requests allowed per window, per client IP
	Window  time.Duration // window length
	Prefix  string        // key namespace in Redis
}

// LoadRateLimitConfig reads limiter settings from the environment with
// sensible defaults.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_MAX", 30),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
