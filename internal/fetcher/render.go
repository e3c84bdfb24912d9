package fetcher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chromedp/chromedp"

	"github.com/jonesrussell/goprofile/internal/logger"
)

// RenderFetcher fetches pages through headless Chrome so
// JavaScript-rendered content is visible to extraction. Use it for
// sites that serve an empty shell to plain HTTP clients.
type RenderFetcher struct {
	cfg Config
	log logger.Interface
}

// NewRenderFetcher creates a rendering fetcher with the given
// configuration.
func NewRenderFetcher(cfg Config, log logger.Interface) *RenderFetcher {
	return &RenderFetcher{
		cfg: cfg.WithDefaults(),
		log: log,
	}
}

// Fetch navigates to the URL in a headless browser and returns the
// final DOM. Each call runs its own browser session bounded by the
// configured timeout.
func (f *RenderFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.UserAgent(f.cfg.UserAgent),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, execOpts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	var (
		renderedHTML string
		finalURL     string
	)

	actions := []chromedp.Action{
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body"),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &renderedHTML),
	}

	if runErr := chromedp.Run(chromeCtx, actions...); runErr != nil {
		return nil, fmt.Errorf("render fetch: %w", runErr)
	}

	if finalURL == "" {
		finalURL = rawURL
	}

	f.log.Debug("page rendered", "url", finalURL, "bytes", len(renderedHTML))

	// chromedp does not surface the HTTP status of the main document
	// without network event plumbing; a completed navigation is
	// treated as success.
	return buildPage(finalURL, http.StatusOK, []byte(renderedHTML))
}
