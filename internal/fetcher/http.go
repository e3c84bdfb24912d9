package fetcher

import (
	"context"
	"fmt"

	"github.com/gocolly/colly/v2"

	"github.com/jonesrussell/goprofile/internal/logger"
)

// HTTPFetcher fetches pages over plain HTTP using colly.
type HTTPFetcher struct {
	cfg  Config
	log  logger.Interface
	base *colly.Collector
}

// NewHTTPFetcher creates an HTTP fetcher with the given configuration.
func NewHTTPFetcher(cfg Config, log logger.Interface) *HTTPFetcher {
	cfg = cfg.WithDefaults()

	base := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.MaxBodySize(int(cfg.MaxBodyBytes)),
		colly.AllowURLRevisit(),
	)
	base.SetRequestTimeout(cfg.Timeout)

	return &HTTPFetcher{
		cfg:  cfg,
		log:  log,
		base: base,
	}
}

// Fetch retrieves a single URL. A non-2xx response or transport failure
// is returned as an error with no page.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	// Callbacks are per-request state, so each fetch gets its own
	// collector sharing the base settings.
	collector := f.base.Clone()
	collector.SetRequestTimeout(f.cfg.Timeout)

	var (
		page     *Page
		fetchErr error
	)

	collector.OnResponse(func(r *colly.Response) {
		built, buildErr := buildPage(r.Request.URL.String(), r.StatusCode, r.Body)
		if buildErr != nil {
			fetchErr = buildErr
			return
		}
		page = built
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode > 0 {
			fetchErr = fmt.Errorf("http status %d: %w", r.StatusCode, err)
			return
		}
		fetchErr = fmt.Errorf("http fetch: %w", err)
	})

	if visitErr := collector.Visit(rawURL); visitErr != nil && fetchErr == nil {
		fetchErr = fmt.Errorf("http fetch: %w", visitErr)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	if page == nil {
		return nil, fmt.Errorf("no response received for %s", rawURL)
	}

	f.log.Debug("page fetched", "url", page.URL, "status", page.StatusCode)

	return page, nil
}

// buildPage parses the response body and derives visible text.
func buildPage(finalURL string, statusCode int, body []byte) (*Page, error) {
	doc, err := Document(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return &Page{
		URL:         finalURL,
		StatusCode:  statusCode,
		HTML:        string(body),
		VisibleText: VisibleText(doc),
		Doc:         doc,
	}, nil
}
