package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// socialFields maps platform names to profile fields, in the order
// platforms are reported.
var socialFields = []struct {
	platform string
	field    domain.Field
}{
	{"linkedin", domain.FieldLinkedIn},
	{"twitter", domain.FieldTwitter},
	{"facebook", domain.FieldFacebook},
	{"instagram", domain.FieldInstagram},
	{"youtube", domain.FieldYouTube},
}

// SocialExtractor finds links to known social platforms in the page
// markup. The first match per platform per page wins.
type SocialExtractor struct {
	// platform -> host domains that identify it
	domains map[string][]string
}

// NewSocialExtractor creates the social-link rule with the given
// platform-to-domain mapping.
func NewSocialExtractor(domains map[string][]string) *SocialExtractor {
	return &SocialExtractor{domains: domains}
}

// Name implements Extractor.
func (e *SocialExtractor) Name() string { return "social" }

// Extract emits one partial per platform found on the page.
func (e *SocialExtractor) Extract(visit *domain.PageVisit, rank int) []domain.PartialExtraction {
	if visit.Doc == nil {
		return nil
	}

	found := make(map[string]string)

	visit.Doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		platform := e.classify(href)
		if platform == "" {
			return
		}
		if _, ok := found[platform]; !ok {
			found[platform] = href
		}
	})

	var partials []domain.PartialExtraction
	for _, sf := range socialFields {
		if link, ok := found[sf.platform]; ok {
			partials = append(partials, partial(visit, rank, sf.field, []string{link}))
		}
	}

	return partials
}

// classify returns the platform a URL belongs to, or "" for
// non-social links.
func (e *SocialExtractor) classify(href string) string {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}

	for platform, hosts := range e.domains {
		for _, d := range hosts {
			if host == d || strings.HasSuffix(host, "."+d) {
				return platform
			}
		}
	}

	return ""
}
