package config

import "time"

// Default configuration values.
const (
	// DefaultMaxPages is the page budget per run, homepage included.
	DefaultMaxPages = 8
	// DefaultRequestTimeout bounds a single page fetch.
	DefaultRequestTimeout = 12 * time.Second
	// DefaultUserAgent identifies the profiler to target sites.
	DefaultUserAgent = "GoProfile/1.0"
	// DefaultMaxBodyBytes limits the size of fetched page responses.
	DefaultMaxBodyBytes = 10 * 1024 * 1024 // 10 MB
	// DefaultOutputDir is where profile JSON files are written.
	DefaultOutputDir = "profiles"
	// DefaultServerAddress is the HTTP API listen address.
	DefaultServerAddress = ":8080"
	// DefaultServerTimeout is the HTTP read/write timeout.
	DefaultServerTimeout = 15 * time.Second
	// DefaultRunTimeout bounds a whole profiling run triggered over HTTP.
	DefaultRunTimeout = 2 * time.Minute
	// DefaultMaxOpenConns caps open Postgres connections.
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns caps idle Postgres connections.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime recycles Postgres connections.
	DefaultConnMaxLifetime = 5 * time.Minute
	// DefaultPingTimeout bounds the connectivity check at startup.
	DefaultPingTimeout = 5 * time.Second
)

// DefaultPriorityKeywords returns the keyword list used to rank
// homepage links for crawling, in priority order.
func DefaultPriorityKeywords() []string {
	return []string{
		"pricing", "about", "contact", "careers", "features",
		"integrations", "blog", "services", "products", "solutions",
		"news", "company", "industries", "partners", "support",
		"faq", "team", "customers", "resources", "case-studies",
	}
}

// DefaultTierNames returns the pricing tier vocabulary.
func DefaultTierNames() []string {
	return []string{
		"Basic", "Starter", "Pro", "Professional",
		"Business", "Enterprise", "Premium", "Free",
	}
}

// DefaultServiceKeywords returns the service/offering vocabulary.
func DefaultServiceKeywords() []string {
	return []string{
		"Platform", "API", "Analytics", "Automation", "Consulting",
		"Integration", "Software", "Application", "Hosting",
		"Monitoring", "Security", "Support",
	}
}

// DefaultCustomerKeywords returns the customer-segment vocabulary.
func DefaultCustomerKeywords() []string {
	return []string{
		"Startup", "Enterprise", "SMB", "Developer", "Team",
		"Agency", "Freelancer", "Healthcare", "Finance", "Retail",
		"Education", "Manufacturing",
	}
}

// DefaultSocialDomains returns the platform to host-domain mapping used
// to categorize social links.
func DefaultSocialDomains() map[string][]string {
	return map[string][]string{
		"linkedin":  {"linkedin.com"},
		"twitter":   {"twitter.com", "x.com"},
		"facebook":  {"facebook.com"},
		"instagram": {"instagram.com"},
		"youtube":   {"youtube.com"},
	}
}
