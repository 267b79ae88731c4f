package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database for minimal images
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	switch strings.ToLower(c.Auth.SessionStore) {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("redis.addr is required when auth.session_store is redis")
		}
	default:
		return fmt.Errorf("auth.session_store must be %q or %q (got %q)", SessionStoreMemory, SessionStoreRedis, c.Auth.SessionStore)
	}

	switch strings.ToLower(c.Storage.Backend) {
	case StorageBackendPostgres:
	case StorageBackendFilesystem:
		if strings.TrimSpace(c.Storage.Dir) == "" {
			return fmt.Errorf("storage.dir is required when storage.backend is filesystem")
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)", StorageBackendPostgres, StorageBackendFilesystem, c.Storage.Backend)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}

	if err := c.Tracking.validate(); err != nil {
		return fmt.Errorf("tracking: %w", err)
	}

	return nil
}

func (t *TrackingConfig) validate() error {
	loc, err := ParseTimezone(t.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	t.Location = loc
	return nil
}

// ParseTimezone loads an IANA zone name. An empty string means UTC.
func ParseTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid zone %q: %w", name, err)
	}
	return loc, nil
}
