package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Chat      ChatConfig      `yaml:"chat"`
	Translate TranslateConfig `yaml:"translate"`
	Log       LogConfig       `yaml:"log"`
}

// CORSConfig holds CORS settings for the bridge API.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects the storage backend and holds its connection settings.
// DSN is used by postgres, SQLitePath by sqlite. Pending migrations are
// applied on start unless SkipMigrations is set.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"sqlite"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"DATABASE_SQLITE_PATH"        env-default:"wordtrainer.db"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds settings for the tokens issued to chat bridges.
type AuthConfig struct {
	BridgeSecret string        `yaml:"bridge_secret" env:"AUTH_BRIDGE_SECRET" env-required:"true"`
	Issuer       string        `yaml:"issuer"        env:"AUTH_ISSUER"        env-default:"wordtrainer"`
	TokenTTL     time.Duration `yaml:"token_ttl"     env:"AUTH_TOKEN_TTL"     env-default:"8760h"`
}

// QuizConfig holds quiz engine settings.
// ReadAttempts counts the first try; 1 disables read retries.
type QuizConfig struct {
	DisableReaper  bool          `yaml:"disable_reaper"   env:"QUIZ_DISABLE_REAPER"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"     env:"QUIZ_IDLE_TIMEOUT"     env-default:"2h"`
	ReaperInterval time.Duration `yaml:"reaper_interval"  env:"QUIZ_REAPER_INTERVAL"  env-default:"5m"`
	StoreTimeout   time.Duration `yaml:"store_timeout"    env:"QUIZ_STORE_TIMEOUT"    env-default:"5s"`
	ReadAttempts   int           `yaml:"read_attempts"    env:"QUIZ_READ_ATTEMPTS"    env-default:"3"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"QUIZ_RETRY_BASE_DELAY" env-default:"100ms"`
}

// Supported chat locales.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// ChatConfig holds conversational front end settings.
type ChatConfig struct {
	Locale             string `yaml:"locale"                env:"CHAT_LOCALE"                env-default:"ru"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute" env:"CHAT_RATE_LIMIT_PER_MINUTE" env-default:"120"`
	DisableRateLimit   bool   `yaml:"disable_rate_limit"    env:"CHAT_DISABLE_RATE_LIMIT"`
}

// RequestsPerMinute returns the per-bridge limit, or 0 when limiting is off.
func (c ChatConfig) RequestsPerMinute() int {
	if c.DisableRateLimit {
		return 0
	}
	return c.RateLimitPerMinute
}

// HelpToken returns the answer text that asks for a hint in the configured locale.
func (c ChatConfig) HelpToken() string {
	if c.Locale == LocaleEN {
		return "help"
	}
	return "помощь"
}

// Supported translation providers.
const (
	TranslateProviderStub = "stub"
	TranslateProviderHTTP = "http"
)

// TranslateConfig selects the word translation provider.
type TranslateConfig struct {
	Provider string        `yaml:"provider" env:"TRANSLATE_PROVIDER" env-default:"stub"`
	BaseURL  string        `yaml:"base_url" env:"TRANSLATE_BASE_URL" env-default:"https://libretranslate.com"`
	APIKey   string        `yaml:"api_key"  env:"TRANSLATE_API_KEY"`
	Timeout  time.Duration `yaml:"timeout"  env:"TRANSLATE_TIMEOUT"  env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
