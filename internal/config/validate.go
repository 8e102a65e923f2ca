package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if len(c.Auth.BridgeSecret) < 32 {
		return fmt.Errorf("auth.bridge_secret must be at least 32 characters (got %d)", len(c.Auth.BridgeSecret))
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	switch c.Chat.Locale {
	case LocaleRU, LocaleEN:
	default:
		return fmt.Errorf("chat.locale must be %q or %q (got %q)", LocaleRU, LocaleEN, c.Chat.Locale)
	}
	if !c.Chat.DisableRateLimit && c.Chat.RateLimitPerMinute <= 0 {
		return fmt.Errorf("chat.rate_limit_per_minute must be > 0 unless disable_rate_limit is set (got %d)", c.Chat.RateLimitPerMinute)
	}

	switch c.Translate.Provider {
	case TranslateProviderStub:
	case TranslateProviderHTTP:
		if c.Translate.BaseURL == "" {
			return fmt.Errorf("translate.base_url is required for the http provider")
		}
	default:
		return fmt.Errorf("translate.provider must be %q or %q (got %q)",
			TranslateProviderStub, TranslateProviderHTTP, c.Translate.Provider)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for the postgres driver")
		}
		if d.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, d.Driver)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.StoreTimeout <= 0 {
		return fmt.Errorf("store_timeout must be > 0 (got %v)", q.StoreTimeout)
	}
	if q.ReadAttempts < 1 {
		return fmt.Errorf("read_attempts must be >= 1 (got %d)", q.ReadAttempts)
	}
	if !q.DisableReaper {
		if q.IdleTimeout <= 0 {
			return fmt.Errorf("idle_timeout must be > 0 unless disable_reaper is set (got %v)", q.IdleTimeout)
		}
		if q.ReaperInterval <= 0 {
			return fmt.Errorf("reaper_interval must be > 0 unless disable_reaper is set (got %v)", q.ReaperInterval)
		}
	}
	if q.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 (got %v)", q.RetryBaseDelay)
	}
	return nil
}
