package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/config"
	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/extract"
)

func newPricingExtractor() *extract.PricingExtractor {
	return extract.NewPricingExtractor(config.DefaultTierNames())
}

func TestPricingExtractor_FullPricingPage(t *testing.T) {
	t.Parallel()

	visit := textVisit(t,
		"$10/month, $20/month, or Enterprise: Custom pricing. Free plan available with a 14-day trial.")
	partials := newPricingExtractor().Extract(visit, 0)

	prices := valuesFor(partials, domain.FieldPrices)
	require.Contains(t, prices, "$10/month")
	require.Contains(t, prices, "$20/month")

	tiers := valuesFor(partials, domain.FieldTiers)
	require.Contains(t, tiers, "Enterprise")

	require.Equal(t, []string{domain.BoolTrue}, valuesFor(partials, domain.FieldFreeOption))
	require.Equal(t, []string{domain.BoolTrue}, valuesFor(partials, domain.FieldTrialAvailable))
}

func TestPricingExtractor_PriceFormats(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Plans from $99/mo, annual $1,299.99 or a flat $5.")
	prices := valuesFor(newPricingExtractor().Extract(visit, 0), domain.FieldPrices)

	require.Equal(t, []string{"$99/mo", "$1,299.99", "$5"}, prices)
}

func TestPricingExtractor_DeduplicatesPrices(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Pro is $10/Month. Yes, just $10/month.")
	prices := valuesFor(newPricingExtractor().Extract(visit, 0), domain.FieldPrices)

	require.Len(t, prices, 1)
	require.Equal(t, "$10/Month", prices[0], "first-seen casing is kept")
}

func TestPricingExtractor_DemoCountsAsTrial(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "Book a demo with our sales team.")
	partials := newPricingExtractor().Extract(visit, 0)

	require.Equal(t, []string{domain.BoolTrue}, valuesFor(partials, domain.FieldTrialAvailable))
	require.Nil(t, valuesFor(partials, domain.FieldFreeOption))
}

func TestPricingExtractor_WordBoundaries(t *testing.T) {
	t.Parallel()

	// "freedom" and "trials" must not trip the free/trial signals.
	visit := textVisit(t, "Freedom to build. Clinical trials platform.")
	partials := newPricingExtractor().Extract(visit, 0)

	require.Nil(t, valuesFor(partials, domain.FieldFreeOption))
	require.Nil(t, valuesFor(partials, domain.FieldTrialAvailable))
}
