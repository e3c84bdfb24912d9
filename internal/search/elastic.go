// Package search provides a thin Elasticsearch client for indexing
// company profiles so stored runs can be full-text searched.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// DefaultIndex is the index name used when none is configured.
const DefaultIndex = "company_profiles"

// profileMapping keeps searchable fields explicit and stores the full
// profile document as-is.
const profileMapping = `{
	"mappings": {
		"properties": {
			"company_name": {"type": "text"},
			"website":      {"type": "keyword"},
			"tagline":      {"type": "text"},
			"description":  {"type": "text"},
			"emails":       {"type": "keyword"},
			"timestamp":    {"type": "date"},
			"profile":      {"type": "object", "enabled": false}
		}
	}
}`

// Client indexes company profiles into Elasticsearch.
type Client struct {
	es    *elasticsearch.Client
	index string
}

// NewClient creates a profile search client for the given addresses.
func NewClient(addresses []string, index string) (*Client, error) {
	if index == "" {
		index = DefaultIndex
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &Client{es: es, index: index}, nil
}

// EnsureIndex creates the profile index when it does not exist yet.
func (c *Client) EnsureIndex(ctx context.Context) error {
	res, err := c.es.Indices.Exists(
		[]string{c.index},
		c.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", c.index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithBody(strings.NewReader(profileMapping)),
		c.es.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", c.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index %s: %s", c.index, res.String())
	}

	return nil
}

// IndexProfile indexes one profiling result keyed by its run ID.
func (c *Client) IndexProfile(ctx context.Context, result *domain.Result) error {
	doc := map[string]any{
		"company_name": result.Identity.CompanyName,
		"website":      result.Identity.Website,
		"tagline":      result.Identity.Tagline,
		"description":  result.Description,
		"emails":       result.Contacts.Emails,
		"timestamp":    result.Metadata.Timestamp,
		"profile":      result,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal profile document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      c.index,
		DocumentID: result.Metadata.RunID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to index profile: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing profile %s: %s", result.Metadata.RunID, res.String())
	}

	return nil
}
