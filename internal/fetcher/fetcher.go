// Package fetcher retrieves raw page content and converts markup to
// visible text. It is the only layer that performs network I/O.
package fetcher

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Default configuration values.
const (
	defaultUserAgent    = "GoProfile/1.0"
	defaultTimeout      = 12 * time.Second
	defaultMaxBodyBytes = 10 * 1024 * 1024 // 10 MB
)

// Page is the result of one successful fetch.
type Page struct {
	// URL is the final URL after redirects
	URL        string
	StatusCode int
	HTML       string
	// VisibleText is the page text with scripts, styles and chrome stripped
	VisibleText string
	// Doc is the parsed markup, shared with downstream extraction
	Doc *goquery.Document
}

// Fetcher retrieves a single page. Implementations treat any non-2xx
// status, transport failure, or timeout as an error; the caller decides
// whether that is fatal.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Page, error)
}

// Config holds fetch settings shared by all implementations.
type Config struct {
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// WithDefaults returns a copy of the config with default values applied
// for zero-value fields.
func (c Config) WithDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	return c
}
