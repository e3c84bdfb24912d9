package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/goprofile/internal/config"
	"github.com/jonesrussell/goprofile/internal/logger"
	"github.com/jonesrussell/goprofile/internal/scraper"
)

// newScheduleCommand creates the schedule command, which re-profiles
// the configured seed URLs on a cron schedule.
func newScheduleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Re-profile configured sites on a cron schedule",
		Long: `Schedule profiles every seed URL from the schedule.seeds config on
the schedule.cron expression, writing each run to the output
directory and any configured stores.`,
		RunE: runSchedule,
	}

	cmd.Flags().Bool("immediate", false, "run all seeds once at startup")

	return cmd
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Schedule.Seeds) == 0 {
		return config.ErrMissingSeeds
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := buildRunner(cfg, log)

	runAll := func() {
		for _, seed := range cfg.Schedule.Seeds {
			profileSeed(ctx, cfg, log, runner, seed)
			if ctx.Err() != nil {
				return
			}
		}
	}

	if immediate, _ := cmd.Flags().GetBool("immediate"); immediate {
		runAll()
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Schedule.Cron, runAll); err != nil {
		return err
	}

	log.Info("scheduler started",
		"cron", cfg.Schedule.Cron,
		"seeds", len(cfg.Schedule.Seeds),
	)
	scheduler.Start()

	<-ctx.Done()

	log.Info("scheduler stopping")
	<-scheduler.Stop().Done()

	return nil
}

// profileSeed runs one scheduled profile. Failures are logged, never
// fatal: the scheduler keeps going.
func profileSeed(ctx context.Context, cfg *config.Config, log logger.Interface, runner *scraper.Runner, seed string) {
	result, err := runner.Run(ctx, seed)
	if err != nil {
		log.Error("scheduled profile failed", "seed", seed, "error", err)
		return
	}

	if err := emitResult(ctx, cfg, log, result); err != nil {
		log.Error("failed to emit scheduled profile", "seed", seed, "error", err)
	}
}
