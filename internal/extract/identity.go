package extract

import (
	"strings"

	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/fetcher"
)

// Tagline length window; anything shorter is noise, anything longer is
// body copy.
const (
	taglineMinLen = 10
	taglineMaxLen = 160
)

// titleSeparators are the suffix separators commonly used in page
// titles ("Acme | Pricing", "Acme - Home").
var titleSeparators = []string{" | ", " - ", " – ", " — "}

// IdentityExtractor extracts the company name and tagline from page
// titles and headings.
type IdentityExtractor struct{}

// NewIdentityExtractor creates the identity rule.
func NewIdentityExtractor() *IdentityExtractor {
	return &IdentityExtractor{}
}

// Name implements Extractor.
func (e *IdentityExtractor) Name() string { return "identity" }

// Extract pulls the company name from the <title> (falling back to the
// first h1) with separator suffixes trimmed, and a tagline from a short
// heading or the meta description.
func (e *IdentityExtractor) Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	if visit.Doc == nil {
		return nil
	}

	var partials []domain.PartialExtraction

	title := fetcher.CleanText(visit.Doc.Find("title").First().Text())
	h1 := fetcher.CleanText(visit.Doc.Find("h1").First().Text())

	name := trimSeparatorSuffix(title)
	if name == "" {
		name = trimSeparatorSuffix(h1)
	}
	if name != "" {
		partials = append(partials, partial(visit, rank, domain.FieldCompanyName, []string{name}))
	}

	if tagline := pickTagline(visit, name, h1); tagline != "" {
		partials = append(partials, partial(visit, rank, domain.FieldTagline, []string{tagline}))
	}

	return partials
}

// pickTagline chooses tagline text adjacent to the title: the first h1
// (when it is not the company name itself), then the meta description,
// then the first h2. Candidates outside the length window are dropped
// as navigation noise or body copy.
func pickTagline(visit *domain.PageVisit, name, h1 string) string {
	candidates := []string{}

	if !strings.EqualFold(h1, name) {
		candidates = append(candidates, h1)
	}

	if metaDesc, ok := visit.Doc.Find("meta[name='description']").Attr("content"); ok {
		candidates = append(candidates, fetcher.CleanText(metaDesc))
	}

	candidates = append(candidates, fetcher.CleanText(visit.Doc.Find("h2").First().Text()))

	for _, c := range candidates {
		if len(c) >= taglineMinLen && len(c) <= taglineMaxLen {
			return c
		}
	}

	return ""
}

// trimSeparatorSuffix keeps the text before the first title separator:
// "Acme Inc | Pricing Plans" becomes "Acme Inc".
func trimSeparatorSuffix(title string) string {
	if title == "" {
		return ""
	}

	cut := len(title)
	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}

	return strings.TrimSpace(title[:cut])
}
