package links

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// Classifier scores same-site links against a keyword vocabulary.
// Links that match no keyword are excluded entirely: they are never
// crawled.
type Classifier struct {
	keywords []string
}

// NewClassifier creates a classifier with the given priority keywords.
func NewClassifier(keywords []string) *Classifier {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lowered = append(lowered, kw)
		}
	}

	return &Classifier{keywords: lowered}
}

// Rank filters discovered links to the seed's registrable domain,
// deduplicates them by normalized URL keeping the highest score, scores
// each against the keyword vocabulary, and returns scoring candidates
// sorted by score descending. The sort is stable: ties keep first-seen
// order.
func (c *Classifier) Rank(seedURL string, discovered []Discovered) []domain.SiteLink {
	seed, err := url.Parse(seedURL)
	if err != nil || seed.Hostname() == "" {
		return nil
	}

	seedDomain := registrableDomain(seed.Hostname())
	seedNorm := normalizeURL(seed)

	var (
		candidates []domain.SiteLink
		byNorm     = make(map[string]int) // normalized URL -> index in candidates
	)

	for _, link := range discovered {
		parsed, parseErr := url.Parse(link.Href)
		if parseErr != nil {
			continue
		}

		if registrableDomain(parsed.Hostname()) != seedDomain {
			continue
		}

		norm := normalizeURL(parsed)
		if norm == seedNorm {
			// The homepage is always visited first; it is not a candidate.
			continue
		}

		score := c.score(parsed.Path, link.Anchor)
		if score == 0 {
			continue
		}

		if idx, seen := byNorm[norm]; seen {
			if score > candidates[idx].Score {
				candidates[idx].Score = score
			}
			continue
		}

		byNorm[norm] = len(candidates)
		candidates = append(candidates, domain.SiteLink{
			URL:        norm,
			AnchorText: link.Anchor,
			Score:      score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// score counts keywords appearing as substrings in the URL path or
// anchor text, one point each.
func (c *Classifier) score(path, anchor string) int {
	path = strings.ToLower(path)
	anchor = strings.ToLower(anchor)

	score := 0
	for _, kw := range c.keywords {
		if strings.Contains(path, kw) || strings.Contains(anchor, kw) {
			score++
		}
	}

	return score
}

// normalizeURL strips query strings, fragments, and trailing slashes so
// near-identical URLs collapse to one candidate.
func normalizeURL(u *url.URL) string {
	normalized := *u
	normalized.RawQuery = ""
	normalized.Fragment = ""
	normalized.Path = strings.TrimSuffix(normalized.Path, "/")

	return normalized.String()
}

// registrableDomain reduces a hostname to its eTLD+1 so subdomains of
// the seed site count as same-site while other sites on a shared public
// suffix (two .co.uk registrations, say) do not. Hosts the suffix list
// cannot place, such as bare IPs or single-label intranet names, fall
// back to their last two labels.
func registrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld1
	}

	parts := strings.Split(host, ".")
	if len(parts) <= 2 {
		return host
	}

	return strings.Join(parts[len(parts)-2:], ".")
}
