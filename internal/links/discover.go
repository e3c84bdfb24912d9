// Package links discovers outbound links on a page and ranks them by
// keyword relevance to decide crawl order.
package links

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Discovered is a raw (href, anchor text) pair found on a page, with
// the href resolved against the page URL.
type Discovered struct {
	Href   string
	Anchor string
}

// skipPrefixes lists href schemes and fragments that are never
// crawlable pages.
var skipPrefixes = []string{"#", "javascript:", "mailto:", "tel:"}

// Discover returns every crawlable link on the document in document
// order, with relative hrefs resolved against baseURL.
func Discover(doc *goquery.Document, baseURL string) []Discovered {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var found []Discovered

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || shouldSkip(href) {
			return
		}

		ref, parseErr := url.Parse(href)
		if parseErr != nil {
			return
		}

		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return
		}

		found = append(found, Discovered{
			Href:   abs.String(),
			Anchor: strings.TrimSpace(s.Text()),
		})
	})

	return found
}

// shouldSkip reports whether the href can never resolve to a page.
func shouldSkip(href string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
