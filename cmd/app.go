package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/goprofile/internal/config"
	"github.com/jonesrussell/goprofile/internal/database"
	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/extract"
	"github.com/jonesrussell/goprofile/internal/fetcher"
	"github.com/jonesrussell/goprofile/internal/links"
	"github.com/jonesrussell/goprofile/internal/logger"
	"github.com/jonesrussell/goprofile/internal/output"
	"github.com/jonesrussell/goprofile/internal/scraper"
	"github.com/jonesrussell/goprofile/internal/search"
)

// loadConfig decodes the Viper state and builds a logger from it.
func loadConfig() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if debug {
		cfg.App.Debug = true
		cfg.Logger.Level = "debug"
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logger.Level,
		Encoding:    cfg.Logger.Encoding,
		Development: cfg.Logger.Development,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, log, nil
}

// buildRunner wires the fetch, classification and extraction layers
// into a profiling runner.
func buildRunner(cfg *config.Config, log logger.Interface) *scraper.Runner {
	fetchCfg := fetcher.Config{
		UserAgent:    cfg.Crawler.UserAgent,
		Timeout:      cfg.Crawler.RequestTimeout,
		MaxBodyBytes: cfg.Crawler.MaxBodyBytes,
	}

	var f fetcher.Fetcher
	if cfg.Crawler.Render {
		f = fetcher.NewRenderFetcher(fetchCfg, log)
	} else {
		f = fetcher.NewHTTPFetcher(fetchCfg, log)
	}

	classifier := links.NewClassifier(cfg.Vocab.PriorityKeywords)
	extractors := extract.DefaultSet(
		cfg.Vocab.TierNames,
		cfg.Vocab.ServiceKeywords,
		cfg.Vocab.CustomerKeywords,
		cfg.Vocab.SocialDomains,
	)

	return scraper.New(f, classifier, extractors, log, cfg.Crawler.MaxPages)
}

// openStore connects to Postgres and ensures the schema. It returns
// nils when the database is disabled; callers treat a nil store as
// "do not persist".
func openStore(ctx context.Context, cfg *config.Config) (*database.ProfileRepository, *sqlx.DB, error) {
	if !cfg.Database.Enabled {
		return nil, nil, nil
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := database.NewProfileRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repo, db, nil
}

// emitResult renders the console summary, writes the JSON profile,
// and pushes the result to the optional stores.
func emitResult(ctx context.Context, cfg *config.Config, log logger.Interface, result *domain.Result) error {
	output.RenderSummary(os.Stdout, result)

	writer := output.NewWriter(cfg.Crawler.OutputDir)
	path, err := writer.Write(result)
	if err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	log.Info("profile written", "path", path)

	repo, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if repo != nil {
		defer db.Close()
		if err := repo.Save(ctx, result); err != nil {
			return err
		}
		log.Info("profile saved to database", "run_id", result.Metadata.RunID)
	}

	client, err := openSearch(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		if err := client.IndexProfile(ctx, result); err != nil {
			return err
		}
		log.Info("profile indexed", "run_id", result.Metadata.RunID)
	}

	return nil
}

// openSearch connects to Elasticsearch and ensures the profile index.
// It returns nil when search indexing is disabled.
func openSearch(ctx context.Context, cfg *config.Config) (*search.Client, error) {
	if !cfg.Elasticsearch.Enabled {
		return nil, nil
	}

	client, err := search.NewClient(cfg.Elasticsearch.Addresses, cfg.Elasticsearch.IndexName)
	if err != nil {
		return nil, err
	}

	if err := client.EnsureIndex(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
