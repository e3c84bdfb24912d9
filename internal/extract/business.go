package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/fetcher"
)

// Description length window; shorter blocks are navigation or
// boilerplate, longer ones are full body copy.
const (
	descriptionMinLen = 80
	descriptionMaxLen = 600
)

// aboutPathMarkers identify about-like pages by URL path.
var aboutPathMarkers = []string{"about", "company"}

// BusinessExtractor extracts services, target customers, and the
// company description.
type BusinessExtractor struct {
	services  *vocabMatcher
	customers *vocabMatcher
}

// NewBusinessExtractor creates the business-info rule with the given
// service and customer-segment vocabularies.
func NewBusinessExtractor(serviceKeywords, customerKeywords []string) *BusinessExtractor {
	return &BusinessExtractor{
		services:  newVocabMatcher(serviceKeywords),
		customers: newVocabMatcher(customerKeywords),
	}
}

// Name implements Extractor.
func (e *BusinessExtractor) Name() string { return "business" }

// Extract emits services and target customers from any page, and a
// description from about-like pages only.
func (e *BusinessExtractor) Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	var partials []domain.PartialExtraction

	if services := e.services.match(visit.VisibleText); len(services) > 0 {
		partials = append(partials, partial(visit, rank, domain.FieldServices, services))
	}

	if customers := e.customers.match(visit.VisibleText); len(customers) > 0 {
		partials = append(partials, partial(visit, rank, domain.FieldTargetCustomers, customers))
	}

	if aboutLike(visit.URL) {
		if desc := longestParagraph(visit.Doc); desc != "" {
			partials = append(partials, partial(visit, rank, domain.FieldDescription, []string{desc}))
		}
	}

	return partials
}

// aboutLike reports whether the URL path marks an about-style page.
func aboutLike(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	path := strings.ToLower(parsed.Path)
	for _, marker := range aboutPathMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}

	return false
}

// longestParagraph returns the longest paragraph text inside the
// description length window.
func longestParagraph(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}

	best := ""

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := fetcher.CleanText(s.Text())
		if len(text) < descriptionMinLen || len(text) > descriptionMaxLen {
			return
		}
		if len(text) > len(best) {
			best = text
		}
	})

	return best
}
