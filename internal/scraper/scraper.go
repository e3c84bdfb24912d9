// Package scraper drives a profiling run: it visits the homepage,
// ranks its outbound links, crawls the top candidates within the page
// budget, fans each page out to the extraction rules, and assembles
// the merged profile with run metadata.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/extract"
	"github.com/jonesrussell/goprofile/internal/fetcher"
	"github.com/jonesrussell/goprofile/internal/links"
	"github.com/jonesrussell/goprofile/internal/logger"
	"github.com/jonesrussell/goprofile/internal/merge"
)

// DefaultMaxPages is the default page budget per run, homepage
// included.
const DefaultMaxPages = 8

// previewLen is how much page text goes into page_details.
const previewLen = 500

// maxHeadings is how many h1-h3 headings go into page_details.
const maxHeadings = 5

// ErrInvalidSeedURL is returned when the seed URL cannot be crawled at
// all. It is the only fatal condition of a run.
var ErrInvalidSeedURL = errors.New("invalid seed URL")

// Runner executes profiling runs.
type Runner struct {
	fetcher    fetcher.Fetcher
	classifier *links.Classifier
	extractors []extract.Extractor
	log        logger.Interface
	maxPages   int
}

// New creates a runner. maxPages values below 1 fall back to the
// default budget.
func New(
	f fetcher.Fetcher,
	classifier *links.Classifier,
	extractors []extract.Extractor,
	log logger.Interface,
	maxPages int,
) *Runner {
	if maxPages < 1 {
		maxPages = DefaultMaxPages
	}

	return &Runner{
		fetcher:    f,
		classifier: classifier,
		extractors: extractors,
		log:        log,
		maxPages:   maxPages,
	}
}

// Run profiles the site at seedURL. Per-page fetch failures are
// recorded in the result's metadata and never abort the run; the only
// fatal error is an unusable seed URL. Cancelling ctx stops new
// fetches and assembles a partial result from the pages already
// visited.
func (r *Runner) Run(ctx context.Context, seedURL string) (*domain.Result, error) {
	seed, err := validateSeed(seedURL)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := r.log.With("run_id", runID, "seed", seedURL)
	log.Info("profiling run started", "max_pages", r.maxPages)

	visits := []*domain.PageVisit{r.visit(ctx, seedURL)}

	homepage := visits[0]
	if !homepage.Failed() {
		candidates := r.classifier.Rank(seed.String(), links.Discover(homepage.Doc, homepage.URL))
		if len(candidates) == 0 {
			log.Info("homepage has no scorable links, homepage-only run")
		}

		for _, cand := range candidates {
			if len(visits) >= r.maxPages {
				break
			}
			if ctx.Err() != nil {
				break
			}
			visits = append(visits, r.visit(ctx, cand.URL))
		}
	}

	result := r.assemble(ctx, seedURL, runID, visits)
	log.Info("profiling run finished",
		"pages_crawled", result.Metadata.PagesCrawled,
		"errors", len(result.Metadata.Errors),
	)

	return result, nil
}

// visit performs one fetch attempt and always returns a PageVisit;
// failures are recorded on the visit, never returned.
func (r *Runner) visit(ctx context.Context, pageURL string) *domain.PageVisit {
	page, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		r.log.Warn("page fetch failed", "url", pageURL, "error", err.Error())
		return &domain.PageVisit{URL: pageURL, FetchError: err.Error()}
	}

	return &domain.PageVisit{
		URL:         page.URL,
		VisibleText: page.VisibleText,
		HTML:        page.HTML,
		Doc:         page.Doc,
	}
}

// assemble extracts every successful visit, merges the partials, and
// wraps the profile with run metadata.
func (r *Runner) assemble(ctx context.Context, seedURL, runID string, visits []*domain.PageVisit) *domain.Result {
	var (
		partials  []domain.PartialExtraction
		visited   []string
		fetchErrs []string
		rank      int
	)

	details := make(map[string]domain.PageDetails)

	for _, v := range visits {
		if v.Failed() {
			fetchErrs = append(fetchErrs, fmt.Sprintf("%s: %s", v.URL, v.FetchError))
			continue
		}

		visited = append(visited, v.URL)
		details[v.URL] = pageDetails(v)
		partials = append(partials, extract.Run(r.extractors, v, rank)...)
		rank++
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		fetchErrs = append(fetchErrs, fmt.Sprintf("run cancelled: %v", ctxErr))
	}

	profile := merge.Profile(seedURL, visited, partials)
	if profile.Identity.CompanyName == "" {
		profile.Identity.CompanyName = nameFromHost(seedURL)
	}
	if len(details) > 0 {
		profile.KeyPages.PageDetails = details
	}

	meta := domain.RunMetadata{
		RunID:        runID,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		PagesCrawled: len(visits),
		Errors:       fetchErrs,
	}
	if meta.Errors == nil {
		meta.Errors = []string{}
	}

	return domain.FromProfile(profile, meta)
}

// pageDetails builds the short per-page preview kept in key_pages.
func pageDetails(v *domain.PageVisit) domain.PageDetails {
	preview := truncateRunes(v.VisibleText, previewLen)

	d := domain.PageDetails{TextPreview: preview}

	if v.Doc != nil {
		d.Title = strings.TrimSpace(v.Doc.Find("title").First().Text())

		v.Doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if text := strings.TrimSpace(s.Text()); text != "" {
				d.Headings = append(d.Headings, text)
			}
			return len(d.Headings) < maxHeadings
		})
	}

	return d
}

// truncateRunes cuts s down to at most limit bytes on a rune boundary,
// so a multi-byte character is never split into invalid UTF-8.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// validateSeed rejects seeds the crawler cannot start from.
func validateSeed(seedURL string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(seedURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeedURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeedURL, seedURL)
	}

	return parsed, nil
}

// nameFromHost derives a fallback company name from the seed host:
// "www.acme-corp.io" becomes "Acme-corp".
func nameFromHost(seedURL string) string {
	parsed, err := url.Parse(seedURL)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if host == "" {
		return ""
	}

	label := strings.Split(host, ".")[0]
	if label == "" {
		return ""
	}

	return strings.ToUpper(label[:1]) + label[1:]
}
