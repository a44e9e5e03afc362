package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret is the signing secret used when JWT_SECRET is unset. It
// exists so the service boots in local development, and it is an obvious
// deployment risk in any other environment: main logs a warning whenever
// this value is in use.
const DefaultJWTSecret = "el-antiq-hostel-secret-key-2024"

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable; unset variables fall back to local-development
// defaults rather than aborting startup.
type Config struct {
	Env         string        // application environment (e.g. "dev", "prod")
	Port        string        // HTTP port to listen on
	DBUser      string        // database username
	DBPass      string        // database password (optional)
	DBHost      string        // database host address
	DBPort      string        // database port number
	DBName      string        // database name
	JWTSecret   string        // secret used to sign bearer tokens
	TokenTTL    time.Duration // bearer token lifetime
	BcryptCost  int           // bcrypt cost for password hashing
	AMQPURL     string        // broker URL for booking notifications; empty disables them
	NotifyQueue string        // queue name for booking notification events
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        envStr("APP_PORT", "8000"),
		DBUser:      envStr("DB_USER", "root"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      envStr("DB_HOST", "localhost"),
		DBPort:      envStr("DB_PORT", "3306"),
		DBName:      envStr("DB_NAME", "hostel"),
		JWTSecret:   envStr("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:    time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:  envInt("BCRYPT_COST", 10),
		AMQPURL:     os.Getenv("AMQP_URL"),
		NotifyQueue: envStr("NOTIFY_QUEUE", "booking.created"),
	}
}

// InsecureSecret reports whether the token signing secret is still the
// built-in default.
func (c Config) InsecureSecret() bool { return c.JWTSecret == DefaultJWTSecret }

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		return dur
	}
	return d
}
