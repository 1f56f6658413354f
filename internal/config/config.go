package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	NLP        NLPConfig        `yaml:"nlp"`
	Translator TranslatorConfig `yaml:"translator"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
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

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN
// disables persistence; the translation cache then lives in memory only.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a database was configured at all.
func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DSN) != ""
}

// VocabularyConfig locates the level word lists and the stopword file.
type VocabularyConfig struct {
	Dir          string `yaml:"dir"           env:"VOCAB_DIR"           env-default:"./vocab"`
	StopwordFile string `yaml:"stopword_file" env:"VOCAB_STOPWORD_FILE" env-default:"./vocab/german_stopwords_plain.txt"`
}

// NLPConfig holds settings for the external tagging service. An empty
// base URL selects the built-in basic tokenizer instead.
type NLPConfig struct {
	BaseURL string `yaml:"base_url" env:"NLP_BASE_URL"`
}

// TranslatorConfig selects and configures the translation backend.
type TranslatorConfig struct {
	// Provider is "none" or "claude".
	Provider        string `yaml:"provider"         env:"TRANSLATOR_PROVIDER"        env-default:"none"`
	APIKey          string `yaml:"api_key"          env:"ANTHROPIC_API_KEY"`
	Model           string `yaml:"model"            env:"TRANSLATOR_MODEL"`
	BatchThreshold  int    `yaml:"batch_threshold"  env:"TRANSLATOR_BATCH_THRESHOLD" env-default:"5"`
	DefaultLanguage string `yaml:"default_language" env:"TRANSLATOR_DEFAULT_LANG"    env-default:"English"`
}

// RateLimitConfig holds per-IP request limiting settings.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_PER_MINUTE"       env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
