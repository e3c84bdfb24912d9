// Package domain provides domain models used across the application.
package domain

// Identity holds the company's basic identity fields.
type Identity struct {
	// Company name extracted from page titles or headings
	CompanyName string `json:"company_name"`
	// Website is always the original seed URL of the run
	Website string `json:"website"`
	// Short marketing tagline, when one was found
	Tagline string `json:"tagline"`
}

// Contacts holds contact channels collected across all visited pages.
type Contacts struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// SocialLinks holds the first-found profile URL per social platform.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Pricing holds pricing signals collected across all visited pages.
type Pricing struct {
	Tiers          []string `json:"tiers"`
	Prices         []string `json:"prices"`
	FreeOption     bool     `json:"free_option"`
	TrialAvailable bool     `json:"trial_available"`
}

// BusinessInfo holds what the company sells and to whom.
type BusinessInfo struct {
	Services        []string `json:"services"`
	Pricing         Pricing  `json:"pricing"`
	TargetCustomers []string `json:"target_customers"`
}

// PageDetails is a short preview of one visited page.
type PageDetails struct {
	Title       string   `json:"title"`
	TextPreview string   `json:"text_preview"`
	Headings    []string `json:"headings,omitempty"`
}

// KeyPages records which pages were successfully visited, in crawl
// order with the homepage first.
type KeyPages struct {
	Visited     []string               `json:"visited"`
	PageDetails map[string]PageDetails `json:"page_details,omitempty"`
}

// CompanyProfile is the merged, normalized business profile for one
// website. Every list field is deduplicated by trimmed, case-folded
// value while preserving the first-seen display casing.
type CompanyProfile struct {
	Identity     Identity     `json:"identity"`
	Contacts     Contacts     `json:"contacts"`
	SocialLinks  SocialLinks  `json:"social_links"`
	Description  string       `json:"description"`
	BusinessInfo BusinessInfo `json:"business_info"`
	KeyPages     KeyPages     `json:"key_pages"`
}

// RunMetadata describes a single profiling run.
type RunMetadata struct {
	RunID string `json:"run_id"`
	// Timestamp is the run completion time in UTC, RFC 3339
	Timestamp string `json:"timestamp"`
	// PagesCrawled counts every fetch attempt, including failures
	PagesCrawled int      `json:"pages_crawled"`
	Errors       []string `json:"errors"`
}

// Result is the persisted output shape. The top-level keys are a
// compatibility contract with downstream consumers.
type Result struct {
	Metadata     RunMetadata  `json:"metadata"`
	Identity     Identity     `json:"identity"`
	Contacts     Contacts     `json:"contacts"`
	SocialLinks  SocialLinks  `json:"social_links"`
	Description  string       `json:"description"`
	BusinessInfo BusinessInfo `json:"business_info"`
	KeyPages     KeyPages     `json:"key_pages"`
}

// FromProfile builds a Result from a merged profile and run metadata.
func FromProfile(profile CompanyProfile, meta RunMetadata) *Result {
	return &Result{
		Metadata:     meta,
		Identity:     profile.Identity,
		Contacts:     profile.Contacts,
		SocialLinks:  profile.SocialLinks,
		Description:  profile.Description,
		BusinessInfo: profile.BusinessInfo,
		KeyPages:     profile.KeyPages,
	}
}
