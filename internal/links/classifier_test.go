package links_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/links"
)

const seedURL = "https://example.com"

func newClassifier() *links.Classifier {
	return links.NewClassifier([]string{"about", "pricing", "contact", "team"})
}

func TestRank_ScoresAndSorts(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	discovered := []links.Discovered{
		{Href: "https://example.com/blog/post-1", Anchor: "A post"},
		{Href: "https://example.com/about/team", Anchor: "Meet us"},
		{Href: "https://example.com/pricing", Anchor: "Pricing"},
	}

	ranked := c.Rank(seedURL, discovered)
	require.Len(t, ranked, 2, "link matching no keyword must be excluded")

	// /about/team matches two keywords, /pricing one.
	require.Equal(t, "https://example.com/about/team", ranked[0].URL)
	require.Equal(t, 2, ranked[0].Score)
	require.Equal(t, "https://example.com/pricing", ranked[1].URL)
	require.Equal(t, 1, ranked[1].Score)
}

func TestRank_AnchorTextCounts(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	ranked := c.Rank(seedURL, []links.Discovered{
		{Href: "https://example.com/p/42", Anchor: "About Our Company"},
	})

	require.Len(t, ranked, 1)
	require.Equal(t, 1, ranked[0].Score, "keyword in anchor text scores even when the path has none")
}

func TestRank_TiesKeepDiscoveryOrder(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	ranked := c.Rank(seedURL, []links.Discovered{
		{Href: "https://example.com/contact", Anchor: ""},
		{Href: "https://example.com/team", Anchor: ""},
	})

	require.Len(t, ranked, 2)
	require.Equal(t, "https://example.com/contact", ranked[0].URL)
	require.Equal(t, "https://example.com/team", ranked[1].URL)
}

func TestRank_CrossDomainExcluded(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	ranked := c.Rank(seedURL, []links.Discovered{
		{Href: "https://other.com/about", Anchor: "About"},
		{Href: "https://www.example.com/about", Anchor: "About"},
		{Href: "https://blog.example.com/pricing", Anchor: "Pricing"},
	})

	// Subdomains share the registrable domain; other.com does not.
	require.Len(t, ranked, 2)
	for _, link := range ranked {
		require.Contains(t, link.URL, "example.com")
	}
}

func TestRank_MultiLabelSuffixIsNotSharedGround(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	ranked := c.Rank("https://acme.co.uk", []links.Discovered{
		{Href: "https://other.co.uk/about", Anchor: "About"},
		{Href: "https://www.acme.co.uk/pricing", Anchor: "Pricing"},
	})

	// Registrable domain is the eTLD+1, so a different .co.uk
	// registration is cross-domain even though it shares two labels.
	require.Len(t, ranked, 1)
	require.Equal(t, "https://www.acme.co.uk/pricing", ranked[0].URL)
}

func TestRank_DeduplicatesKeepingHighestScore(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	ranked := c.Rank(seedURL, []links.Discovered{
		{Href: "https://example.com/about?ref=nav", Anchor: ""},
		{Href: "https://example.com/about/", Anchor: "About the team"},
		{Href: "https://example.com/about#top", Anchor: "About"},
	})

	require.Len(t, ranked, 1, "query, fragment and trailing-slash variants collapse to one candidate")
	require.Equal(t, "https://example.com/about", ranked[0].URL)
	require.Equal(t, 2, ranked[0].Score, "the highest-scoring variant wins")
}

func TestRank_HomepageNeverACandidate(t *testing.T) {
	t.Parallel()

	c := newClassifier()
	ranked := c.Rank("https://example.com/", []links.Discovered{
		{Href: "https://example.com", Anchor: "About us at home"},
		{Href: "https://example.com/#contact", Anchor: "Contact"},
	})

	require.Empty(t, ranked)
}

func TestDiscover_ResolvesAndFilters(t *testing.T) {
	t.Parallel()

	const page = `<!DOCTYPE html>
<html><body>
  <a href="/about">About</a>
  <a href="pricing">Pricing</a>
  <a href="mailto:hi@example.com">Mail</a>
  <a href="tel:+15551234567">Call</a>
  <a href="javascript:void(0)">Menu</a>
  <a href="#section">Jump</a>
  <a href="ftp://example.com/file">File</a>
  <a href="https://other.com/page">Elsewhere</a>
</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	found := links.Discover(doc, "https://example.com/")
	require.Len(t, found, 3)

	require.Equal(t, "https://example.com/about", found[0].Href)
	require.Equal(t, "About", found[0].Anchor)
	require.Equal(t, "https://example.com/pricing", found[1].Href)
	require.Equal(t, "https://other.com/page", found[2].Href, "cross-domain filtering happens in Rank, not Discover")
}
