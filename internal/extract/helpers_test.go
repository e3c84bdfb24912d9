package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/extract"
	"github.com/jonesrussell/goprofile/internal/fetcher"
)

// newVisit builds a page visit from raw markup the way the crawl loop
// does.
func newVisit(t *testing.T, pageURL, rawHTML string) *domain.PageVisit {
	t.Helper()

	doc, err := fetcher.Document(rawHTML)
	require.NoError(t, err)

	return &domain.PageVisit{
		URL:         pageURL,
		HTML:        rawHTML,
		VisibleText: fetcher.VisibleText(doc),
		Doc:         doc,
	}
}

// textVisit wraps plain text in a minimal page.
func textVisit(t *testing.T, text string) *domain.PageVisit {
	t.Helper()

	return newVisit(t, "https://example.com/contact", "<html><body><p>"+text+"</p></body></html>")
}

// valuesFor returns the values of the first partial carrying field, or
// nil when no partial does.
func valuesFor(partials []domain.PartialExtraction, field domain.Field) []string {
	for _, p := range partials {
		if p.Field == field {
			return p.Values
		}
	}
	return nil
}

func TestRun_SkipsFailedVisits(t *testing.T) {
	t.Parallel()

	visit := &domain.PageVisit{
		URL:        "https://example.com/contact",
		FetchError: "connection refused",
	}

	extractors := []extract.Extractor{extract.NewEmailExtractor()}
	require.Nil(t, extract.Run(extractors, visit, 1))
}

func TestRun_StampsRankOnPartials(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Reach us at hello@example.com")
	extractors := []extract.Extractor{extract.NewEmailExtractor()}

	partials := extract.Run(extractors, visit, 3)
	require.Len(t, partials, 1)
	require.Equal(t, 3, partials[0].Rank)
	require.Equal(t, visit.URL, partials[0].SourceURL)
}
