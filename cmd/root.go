// Package cmd implements the command-line interface for GoProfile.
// It provides the root command and subcommands for profiling company
// websites.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/goprofile/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands.
	debug bool

	// rootCmd represents the root command for the GoProfile CLI.
	rootCmd = &cobra.Command{
		Use:   "goprofile",
		Short: "A company website profiler",
		Long: `GoProfile crawls a company website within a small page budget,
extracts contact, pricing, social and business details, and merges
them into a single structured profile.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to Viper
	_ = godotenv.Load()

	// Parse flags early to get the config path before Viper reads it
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("goprofile version %s\n", version)
		},
	})

	rootCmd.AddCommand(newProfileCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newScheduleCommand())
}

// initConfig reads in the config file and environment variables.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Environment variables take precedence over defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; defaults and env vars cover the rest
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	return bindEnvVars()
}

// setDefaults establishes defaults for every config key so viper's
// AllSettings always yields a complete tree.
func setDefaults() {
	viper.SetDefault("app.name", "goprofile")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.development", false)

	viper.SetDefault("crawler.max_pages", config.DefaultMaxPages)
	viper.SetDefault("crawler.request_timeout", config.DefaultRequestTimeout)
	viper.SetDefault("crawler.user_agent", config.DefaultUserAgent)
	viper.SetDefault("crawler.max_body_bytes", config.DefaultMaxBodyBytes)
	viper.SetDefault("crawler.render", false)
	viper.SetDefault("crawler.output_dir", config.DefaultOutputDir)

	viper.SetDefault("vocab.priority_keywords", config.DefaultPriorityKeywords())
	viper.SetDefault("vocab.tier_names", config.DefaultTierNames())
	viper.SetDefault("vocab.service_keywords", config.DefaultServiceKeywords())
	viper.SetDefault("vocab.customer_keywords", config.DefaultCustomerKeywords())
	viper.SetDefault("vocab.social_domains", config.DefaultSocialDomains())

	viper.SetDefault("database.enabled", false)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "goprofile")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_open_conns", config.DefaultMaxOpenConns)
	viper.SetDefault("database.max_idle_conns", config.DefaultMaxIdleConns)
	viper.SetDefault("database.conn_max_lifetime", config.DefaultConnMaxLifetime)
	viper.SetDefault("database.ping_timeout", config.DefaultPingTimeout)

	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("elasticsearch.addresses", []string{"http://localhost:9200"})
	viper.SetDefault("elasticsearch.index_name", "company_profiles")

	viper.SetDefault("server.address", config.DefaultServerAddress)
	viper.SetDefault("server.read_timeout", config.DefaultServerTimeout)
	viper.SetDefault("server.write_timeout", config.DefaultServerTimeout)
	viper.SetDefault("server.run_timeout", config.DefaultRunTimeout)

	viper.SetDefault("schedule.cron", "0 6 * * 1")
	viper.SetDefault("schedule.seeds", []string{})
}

// bindEnvVars maps well-known environment variables to config keys.
func bindEnvVars() error {
	bindings := map[string][]string{
		"app.environment":          {"APP_ENV"},
		"logger.level":             {"LOG_LEVEL"},
		"logger.encoding":          {"LOG_FORMAT"},
		"database.host":            {"POSTGRES_HOST"},
		"database.port":            {"POSTGRES_PORT"},
		"database.user":            {"POSTGRES_USER"},
		"database.password":        {"POSTGRES_PASSWORD"},
		"database.dbname":          {"POSTGRES_DB"},
		"elasticsearch.addresses":  {"ELASTICSEARCH_HOSTS", "ELASTICSEARCH_ADDRESSES"},
		"elasticsearch.index_name": {"ELASTICSEARCH_INDEX_NAME"},
	}

	for key, envs := range bindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}
