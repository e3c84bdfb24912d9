// Package config loads and validates application configuration from
// config files, environment variables, and defaults via Viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Common errors returned by the config package.
var (
	// ErrMissingSeeds is returned when the schedule command runs with no seed URLs.
	ErrMissingSeeds = errors.New("no seed URLs configured")
)

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// CrawlerConfig holds the crawl driver and fetch settings.
type CrawlerConfig struct {
	// MaxPages is the page budget per run, homepage included
	MaxPages       int           `mapstructure:"max_pages"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	// Render switches the fetch layer to headless Chrome
	Render    bool   `mapstructure:"render"`
	OutputDir string `mapstructure:"output_dir"`
}

// VocabConfig holds the extraction vocabularies. These are
// configuration data, not code: they can be tuned in the config file
// without recompilation.
type VocabConfig struct {
	PriorityKeywords []string            `mapstructure:"priority_keywords"`
	TierNames        []string            `mapstructure:"tier_names"`
	ServiceKeywords  []string            `mapstructure:"service_keywords"`
	CustomerKeywords []string            `mapstructure:"customer_keywords"`
	SocialDomains    map[string][]string `mapstructure:"social_domains"`
}

// DatabaseConfig holds optional Postgres settings.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	PingTimeout     time.Duration `mapstructure:"ping_timeout"`
}

// ElasticsearchConfig holds optional Elasticsearch settings.
type ElasticsearchConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Addresses []string `mapstructure:"addresses"`
	IndexName string   `mapstructure:"index_name"`
}

// ServerConfig holds HTTP API server settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// RunTimeout bounds one profiling run triggered over HTTP
	RunTimeout time.Duration `mapstructure:"run_timeout"`
}

// ScheduleConfig holds the periodic re-profiling settings.
type ScheduleConfig struct {
	// Cron is a standard 5-field cron expression
	Cron  string   `mapstructure:"cron"`
	Seeds []string `mapstructure:"seeds"`
}

// Config is the root configuration.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	Crawler       CrawlerConfig       `mapstructure:"crawler"`
	Vocab         VocabConfig         `mapstructure:"vocab"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Server        ServerConfig        `mapstructure:"server"`
	Schedule      ScheduleConfig      `mapstructure:"schedule"`
}

// Load decodes the current Viper state into a Config. Callers are
// expected to have initialized Viper (config file, env bindings,
// defaults) beforehand; see cmd.Execute.
func Load() (*Config, error) {
	return decode(viper.AllSettings())
}

// decode maps raw settings onto the Config struct with duration and
// slice conversion hooks.
func decode(settings map[string]any) (*Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if decodeErr := decoder.Decode(settings); decodeErr != nil {
		return nil, fmt.Errorf("decode config: %w", decodeErr)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills zero-value fields that must never be empty, so a
// partial config file still yields a usable configuration.
func (c *Config) applyDefaults() {
	if c.Crawler.MaxPages <= 0 {
		c.Crawler.MaxPages = DefaultMaxPages
	}
	if c.Crawler.RequestTimeout <= 0 {
		c.Crawler.RequestTimeout = DefaultRequestTimeout
	}
	if c.Crawler.UserAgent == "" {
		c.Crawler.UserAgent = DefaultUserAgent
	}
	if c.Crawler.MaxBodyBytes <= 0 {
		c.Crawler.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Crawler.OutputDir == "" {
		c.Crawler.OutputDir = DefaultOutputDir
	}
	if len(c.Vocab.PriorityKeywords) == 0 {
		c.Vocab.PriorityKeywords = DefaultPriorityKeywords()
	}
	if len(c.Vocab.TierNames) == 0 {
		c.Vocab.TierNames = DefaultTierNames()
	}
	if len(c.Vocab.ServiceKeywords) == 0 {
		c.Vocab.ServiceKeywords = DefaultServiceKeywords()
	}
	if len(c.Vocab.CustomerKeywords) == 0 {
		c.Vocab.CustomerKeywords = DefaultCustomerKeywords()
	}
	if len(c.Vocab.SocialDomains) == 0 {
		c.Vocab.SocialDomains = DefaultSocialDomains()
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = DefaultMaxOpenConns
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = DefaultMaxIdleConns
	}
	if c.Database.ConnMaxLifetime <= 0 {
		c.Database.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if c.Database.PingTimeout <= 0 {
		c.Database.PingTimeout = DefaultPingTimeout
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultServerAddress
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultServerTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = DefaultServerTimeout
	}
	if c.Server.RunTimeout <= 0 {
		c.Server.RunTimeout = DefaultRunTimeout
	}
}
