package extract

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// priceRe matches currency-prefixed amounts with an optional billing
// period suffix: $10, $1,299.99, $20/month, $99/mo.
var priceRe = regexp.MustCompile(`(?i)\$\d+(?:,\d{3})*(?:\.\d+)?(?:/(?:month|year|mo))?`)

// Pricing-context signal words.
var (
	freeRe  = regexp.MustCompile(`(?i)\bfree\b`)
	trialRe = regexp.MustCompile(`(?i)\b(?:trial|demo)\b`)
)

// PricingExtractor extracts price tokens, tier names, and free/trial
// signals from visible text.
type PricingExtractor struct {
	tiers *vocabMatcher
}

// NewPricingExtractor creates the pricing rule with the given tier-name
// vocabulary.
func NewPricingExtractor(tierNames []string) *PricingExtractor {
	return &PricingExtractor{tiers: newVocabMatcher(tierNames)}
}

// Name implements Extractor.
func (e *PricingExtractor) Name() string { return "pricing" }

// Extract emits prices, tiers, and the free/trial booleans found on
// the page.
func (e *PricingExtractor) Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	text := visit.VisibleText

	var partials []domain.PartialExtraction

	if prices := e.prices(text); len(prices) > 0 {
		partials = append(partials, partial(visit, rank, domain.FieldPrices, prices))
	}

	if tiers := e.tiers.match(text); len(tiers) > 0 {
		partials = append(partials, partial(visit, rank, domain.FieldTiers, tiers))
	}

	if freeRe.MatchString(text) {
		partials = append(partials, partial(visit, rank, domain.FieldFreeOption, []string{domain.BoolTrue}))
	}

	if trialRe.MatchString(text) {
		partials = append(partials, partial(visit, rank, domain.FieldTrialAvailable, []string{domain.BoolTrue}))
	}

	return partials
}

// prices returns price tokens deduplicated by lower-cased value,
// keeping first-seen order and casing.
func (e *PricingExtractor) prices(text string) []string {
	matches := priceRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var (
		prices []string
		seen   = make(map[string]bool)
	)

	for _, m := range matches {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		prices = append(prices, m)
	}

	return prices
}
