package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newProfileCommand creates the profile command, which runs one
// profiling pass against a seed URL and writes the result to disk.
func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [url]",
		Short: "Profile a company website",
		Long: `Profile crawls the given website within the configured page budget,
extracts business details, and writes the merged profile as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, args[0])
		},
	}

	cmd.Flags().Int("max-pages", 0, "page budget for the run (overrides config)")
	cmd.Flags().Bool("render", false, "fetch pages with a headless browser")
	cmd.Flags().String("output-dir", "", "directory for the JSON profile (overrides config)")

	_ = viper.BindPFlag("crawler.render", cmd.Flags().Lookup("render"))

	return cmd
}

func runProfile(cmd *cobra.Command, seedURL string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	if maxPages, _ := cmd.Flags().GetInt("max-pages"); maxPages > 0 {
		cfg.Crawler.MaxPages = maxPages
	}
	if outputDir, _ := cmd.Flags().GetString("output-dir"); outputDir != "" {
		cfg.Crawler.OutputDir = outputDir
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := buildRunner(cfg, log)

	result, err := runner.Run(ctx, seedURL)
	if err != nil {
		return fmt.Errorf("profiling %s: %w", seedURL, err)
	}

	return emitResult(ctx, cfg, log, result)
}
