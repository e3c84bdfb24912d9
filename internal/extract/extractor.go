// Package extract implements the per-page field extraction rules.
// Every rule is stateless: it reads one page visit and emits zero or
// more partial extractions, never an error. Finding nothing on a page
// is a normal outcome, not a failure.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// Extractor is a single extraction rule. Rank is the page's position
// in visit order and is copied onto every emitted partial.
type Extractor interface {
	Name() string
	Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction
}

// Run applies every extractor to the visit. Failed visits yield
// nothing.
func Run(extractors []Extractor, visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	if visit == nil || visit.Failed() {
		return nil
	}

	var partials []domain.PartialExtraction
	for _, ex := range extractors {
		partials = append(partials, ex.Extract(visit, rank)...)
	}

	return partials
}

// partial builds a one-field partial extraction.
func partial(visit *domain.PageVisit, rank int, field domain.Field, values []string) domain.PartialExtraction {
	return domain.PartialExtraction{
		SourceURL: visit.URL,
		Field:     field,
		Values:    values,
		Rank:      rank,
	}
}

// vocabMatcher matches a fixed word vocabulary against free text using
// word boundaries, preserving the display casing found on the page.
type vocabMatcher struct {
	patterns []*regexp.Regexp
}

// newVocabMatcher compiles one case-insensitive word-boundary pattern
// per vocabulary entry.
func newVocabMatcher(words []string) *vocabMatcher {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}

	return &vocabMatcher{patterns: patterns}
}

// match returns the vocabulary words present in text, in vocabulary
// order, each with the casing of its first occurrence on the page.
func (m *vocabMatcher) match(text string) []string {
	var found []string
	for _, re := range m.patterns {
		if hit := re.FindString(text); hit != "" {
			found = append(found, hit)
		}
	}

	return found
}
