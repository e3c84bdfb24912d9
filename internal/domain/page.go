package domain

import "github.com/PuerkitoBio/goquery"

// SiteLink is a link discovered on the homepage, scored by keyword
// relevance. Links are ordered by score descending with ties broken
// by original document order.
type SiteLink struct {
	URL        string `json:"url"`
	AnchorText string `json:"anchor_text"`
	Score      int    `json:"relevance_score"`
}

// PageVisit is one attempted page fetch. Created by the crawl driver
// and never mutated afterwards; a visit with a non-empty FetchError
// carries no text and contributes nothing to extraction.
type PageVisit struct {
	URL         string `json:"url"`
	VisibleText string `json:"visible_text"`
	HTML        string `json:"raw_markup,omitempty"`
	FetchError  string `json:"fetch_error,omitempty"`
	// Parsed markup for extractors; nil for failed fetches
	Doc *goquery.Document `json:"-"`
}

// Failed reports whether the fetch attempt for this page failed.
func (v *PageVisit) Failed() bool {
	return v.FetchError != ""
}
