package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	MaxBodyBytes    int64         // max accepted request body size

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile string // optional YAML file with documents saved on startup (empty = disabled)

	// Redis mirror (optional, empty RedisAddr = disabled)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisKeyPrefix      string        // prefix for every key written by docstore
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
	SnapshotInterval    time.Duration // how often the store is mirrored to Redis
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DOCSTORE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DOCSTORE_SHUTDOWN_TIMEOUT", 5*time.Second),
		MaxBodyBytes:    int64(getenvInt("DOCSTORE_MAX_BODY_BYTES", 1<<20)),

		// Logging
		LogLevel:  strings.ToLower(getenv("DOCSTORE_LOG_LEVEL", "info")),
		PrettyLog: mustBool("DOCSTORE_PRETTY_LOG", true),

		// Seed
		SeedFile: getenv("DOCSTORE_SEED_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("DOCSTORE_REDIS_ADDR", ""),
		RedisUser:           getenv("DOCSTORE_REDIS_USERNAME", ""),
		RedisPassword:       getenv("DOCSTORE_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DOCSTORE_REDIS_DB", 0),
		RedisKeyPrefix:      getenv("DOCSTORE_REDIS_KEY_PREFIX", "docstore:"),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		SnapshotInterval:    mustDuration("DOCSTORE_SNAPSHOT_INTERVAL", time.Minute),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg, nil
}

// RedisEnabled reports whether the Redis mirror is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) validate() error {
	if c.ListenPort == "" {
		return fmt.Errorf("DOCSTORE_LISTEN_PORT must not be empty")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("DOCSTORE_MAX_BODY_BYTES must be > 0, got %d", c.MaxBodyBytes)
	}
	if c.RedisEnabled() && c.SnapshotInterval <= 0 {
		return fmt.Errorf("DOCSTORE_SNAPSHOT_INTERVAL must be > 0 when redis is enabled, got %v", c.SnapshotInterval)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
