package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/extract"
)

func newBusinessExtractor() *extract.BusinessExtractor {
	return extract.NewBusinessExtractor(
		[]string{"Analytics", "Consulting", "Hosting"},
		[]string{"Startup", "Enterprise", "Agency"},
	)
}

func TestBusinessExtractor_VocabularyMatches(t *testing.T) {
	t.Parallel()

	visit := textVisit(t, "We offer analytics and consulting for every startup and enterprise.")
	partials := newBusinessExtractor().Extract(visit, 0)

	require.Equal(t, []string{"analytics", "consulting"}, valuesFor(partials, domain.FieldServices),
		"page casing is kept, vocabulary order is kept")
	require.Equal(t, []string{"startup", "enterprise"}, valuesFor(partials, domain.FieldTargetCustomers))
}

func TestBusinessExtractor_DescriptionFromAboutPage(t *testing.T) {
	t.Parallel()

	para := "Acme was founded to make infrastructure boring. " +
		"We build monitoring and deployment tools used by thousands of engineering teams " +
		"around the world, from two-person garages to public companies."

	page := `<html><body>
  <p>Short intro.</p>
  <p>` + para + `</p>
</body></html>`

	visit := newVisit(t, "https://acme.com/about", page)
	partials := newBusinessExtractor().Extract(visit, 0)

	require.Equal(t, []string{para}, valuesFor(partials, domain.FieldDescription))
}

func TestBusinessExtractor_NoDescriptionOffAboutPages(t *testing.T) {
	t.Parallel()

	para := strings.Repeat("Plenty of perfectly descriptive text here. ", 4)

	page := `<html><body><p>` + strings.TrimSpace(para) + `</p></body></html>`

	visit := newVisit(t, "https://acme.com/pricing", page)
	partials := newBusinessExtractor().Extract(visit, 0)

	require.Nil(t, valuesFor(partials, domain.FieldDescription),
		"descriptions come only from about-like pages")
}

func TestBusinessExtractor_DescriptionLengthWindow(t *testing.T) {
	t.Parallel()

	tooShort := "Just a stub."
	tooLong := strings.Repeat("words and more words in a very long paragraph ", 20)

	page := `<html><body><p>` + tooShort + `</p><p>` + tooLong + `</p></body></html>`

	visit := newVisit(t, "https://acme.com/company", page)
	partials := newBusinessExtractor().Extract(visit, 0)

	require.Nil(t, valuesFor(partials, domain.FieldDescription))
}
