package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:coinscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram delivery configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Report schedule configuration"`

	Sources SourcesConfig `yaml:"sources" json:"sources" jsonschema:"description=Upstream data source configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for report generation"`
}

// TelegramConfig holds delivery channel settings
type TelegramConfig struct {
	Token       string        `yaml:"token" json:"token" jsonschema:"required,description=Telegram bot token (can use environment variable)"`
	APIBase     string        `yaml:"api_base" json:"api_base" jsonschema:"default=https://api.telegram.org,description=Telegram Bot API base URL"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Send request timeout"`
	MaxMsgSize  int           `yaml:"max_msg_size" json:"max_msg_size" jsonschema:"default=4000,description=Maximum message size before chunking"`
	MaxParallel int           `yaml:"max_parallel" json:"max_parallel" jsonschema:"default=5,description=Maximum concurrent recipient deliveries"`
}

// ScheduleConfig holds the fixed-time-of-day trigger settings.
// Hours and minutes are interpreted in the configured UTC offset.
type ScheduleConfig struct {
	UTCOffset     int `yaml:"utc_offset" json:"utc_offset" jsonschema:"default=3,description=Fixed timezone offset in hours for schedule times"`
	MorningHour   int `yaml:"morning_hour" json:"morning_hour" jsonschema:"default=8,description=Morning report hour"`
	MorningMinute int `yaml:"morning_minute" json:"morning_minute" jsonschema:"default=0,description=Morning report minute"`
	EveningHour   int `yaml:"evening_hour" json:"evening_hour" jsonschema:"default=23,description=Evening report hour"`
	EveningMinute int `yaml:"evening_minute" json:"evening_minute" jsonschema:"default=0,description=Evening report minute"`
	MaxWorkers    int `yaml:"max_workers" json:"max_workers" jsonschema:"default=3,description=Maximum concurrent token aggregations"`
}

// SourcesConfig holds upstream API settings
type SourcesConfig struct {
	Quote QuoteConfig `yaml:"quote" json:"quote" jsonschema:"description=Exchange quote API settings"`
	Pool  PoolConfig  `yaml:"pool" json:"pool" jsonschema:"description=DEX pool API settings"`
	Feed  FeedConfig  `yaml:"feed" json:"feed" jsonschema:"description=Social feed mirror settings"`
	News  NewsConfig  `yaml:"news" json:"news" jsonschema:"description=News API settings"`
}

// QuoteConfig holds exchange quote API settings
type QuoteConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://pro-api.coinmarketcap.com,description=Quote API base URL"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=Quote API key (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
}

// PoolConfig holds DEX pool API settings
type PoolConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.dexscreener.com,description=Pool API base URL"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
}

// FeedConfig holds social feed mirror pool settings
type FeedConfig struct {
	Mirrors []string      `yaml:"mirrors" json:"mirrors" jsonschema:"description=Priority-ordered list of mirror base URLs"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout per mirror"`
}

// NewsConfig holds news API settings
type NewsConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://min-api.cryptocompare.com/data/v2/news/,description=News API URL"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Request timeout"`
}

// LLMConfig holds LLM configuration for report generation
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://openrouter.ai/api/v1,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=google/gemma-3n-e4b-it,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
}

// Load reads configuration from a YAML file. Defaults are applied
// first and the parsed document overrides only the keys it contains,
// so explicit zero values (utc_offset: 0, morning_hour: 0) are honored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := defaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// defaultConfig returns a config pre-filled with every default value
func defaultConfig() *Config {
	var c Config

	c.Server.Listen = ":8080"
	c.Server.Timeout = 30 * time.Second

	c.Database.DSN = "file:coinscope.db?cache=shared&mode=rwc&_txlock=immediate"
	c.Database.MaxOpenConns = 10
	c.Database.MaxIdleConns = 5
	c.Database.ConnMaxLifetime = 3600

	c.Telegram.APIBase = "https://api.telegram.org"
	c.Telegram.Timeout = 30 * time.Second
	c.Telegram.MaxMsgSize = 4000
	c.Telegram.MaxParallel = 5

	c.Schedule.UTCOffset = 3 // MSK
	c.Schedule.MorningHour = 8
	c.Schedule.EveningHour = 23
	c.Schedule.MaxWorkers = 3

	c.Sources.Quote.Endpoint = "https://pro-api.coinmarketcap.com"
	c.Sources.Quote.Timeout = 15 * time.Second
	c.Sources.Pool.Endpoint = "https://api.dexscreener.com"
	c.Sources.Pool.Timeout = 15 * time.Second
	c.Sources.Feed.Mirrors = []string{
		"https://nitter.net",
		"https://nitter.privacyredirect.com",
		"https://nitter.poast.org",
	}
	c.Sources.Feed.Timeout = 15 * time.Second
	c.Sources.News.Endpoint = "https://min-api.cryptocompare.com/data/v2/news/"
	c.Sources.News.Timeout = 20 * time.Second

	c.LLM.Endpoint = "https://openrouter.ai/api/v1"
	c.LLM.Model = "google/gemma-3n-e4b-it"
	c.LLM.Temperature = 0.7
	c.LLM.MaxTokens = 2000
	c.LLM.Timeout = 60 * time.Second

	return &c
}

// ScheduleLocation returns the fixed-offset location schedule times are
// expressed in
func (c *Config) ScheduleLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.Schedule.UTCOffset), c.Schedule.UTCOffset*3600)
}

// GetServerConfig provides listen address and timeout for the HTTP server
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
