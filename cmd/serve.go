package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goprofile/internal/api"
)

// newServeCommand creates the serve command, which exposes profiling
// over HTTP.
func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the profile HTTP API",
		Long: `Serve starts an HTTP server that profiles websites on demand via
POST /api/v1/profiles and lists stored profiles when a database is
configured.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := buildRunner(cfg, log)

	repo, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// The handler takes the store as an interface; a nil repository
	// must become a nil interface, not an interface holding nil.
	var store api.ProfileStore
	if repo != nil {
		store = repo
	}

	handler := api.NewProfileHandler(runner, store, log, cfg.Server.RunTimeout)

	server := api.NewServer(api.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		RunTimeout:   cfg.Server.RunTimeout,
		Debug:        cfg.App.Debug,
	}, handler, log)

	return server.Start(ctx)
}
