package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/config"
)

// Load reads global Viper state, so these tests reset it and never run
// in parallel.

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, config.DefaultMaxPages, cfg.Crawler.MaxPages)
	require.Equal(t, config.DefaultRequestTimeout, cfg.Crawler.RequestTimeout)
	require.Equal(t, config.DefaultUserAgent, cfg.Crawler.UserAgent)
	require.Equal(t, config.DefaultOutputDir, cfg.Crawler.OutputDir)
	require.Equal(t, config.DefaultServerAddress, cfg.Server.Address)
	require.Equal(t, config.DefaultRunTimeout, cfg.Server.RunTimeout)

	require.NotEmpty(t, cfg.Vocab.PriorityKeywords)
	require.NotEmpty(t, cfg.Vocab.TierNames)
	require.Contains(t, cfg.Vocab.SocialDomains, "linkedin")
}

func TestLoad_DatabasePoolSettings(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, config.DefaultMaxOpenConns, cfg.Database.MaxOpenConns)
	require.Equal(t, config.DefaultMaxIdleConns, cfg.Database.MaxIdleConns)
	require.Equal(t, config.DefaultConnMaxLifetime, cfg.Database.ConnMaxLifetime)
	require.Equal(t, config.DefaultPingTimeout, cfg.Database.PingTimeout)

	viper.Set("database.max_open_conns", 10)
	viper.Set("database.ping_timeout", "2s")

	cfg, err = config.Load()
	require.NoError(t, err)

	require.Equal(t, 10, cfg.Database.MaxOpenConns)
	require.Equal(t, 2*time.Second, cfg.Database.PingTimeout)
}

func TestLoad_OverridesFromSettings(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("crawler.max_pages", 3)
	viper.Set("crawler.request_timeout", "30s")
	viper.Set("crawler.render", true)
	viper.Set("vocab.priority_keywords", []string{"about", "docs"})
	viper.Set("schedule.seeds", []string{"https://acme.test"})

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Crawler.MaxPages)
	require.Equal(t, 30*time.Second, cfg.Crawler.RequestTimeout)
	require.True(t, cfg.Crawler.Render)
	require.Equal(t, []string{"about", "docs"}, cfg.Vocab.PriorityKeywords)
	require.Equal(t, []string{"https://acme.test"}, cfg.Schedule.Seeds)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("crawler.max_pages", -1)
	viper.Set("crawler.user_agent", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, config.DefaultMaxPages, cfg.Crawler.MaxPages)
	require.Equal(t, config.DefaultUserAgent, cfg.Crawler.UserAgent)
}
