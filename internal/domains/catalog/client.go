package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-search/internal/domains/search/model"
	"bookstore-search/pkg/metrics"
)

// =====================================================
// HTTP CATALOG CLIENT
// =====================================================

// Config - connection settings of one upstream catalog
type Config struct {
	Name    string        // label used in logs and metrics
	BaseURL string        // e.g. http://books:8001
	Secret  string        // sent as the Authorization header when set
	Timeout time.Duration // whole-request timeout
}

type client struct {
	config     Config
	httpClient *http.Client
}

func newClient(config Config) *client {
	return &client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// get performs GET baseURL+path and decodes the payload into dest.
// The payload is either the body itself or the "data" member of an envelope.
func (c *client) get(ctx context.Context, path string, dest any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		metrics.UpstreamRequestDuration.
			WithLabelValues(c.config.Name, outcome).
			Observe(time.Since(start).Seconds())
	}()

	url := strings.TrimRight(c.config.BaseURL, "/") + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create HTTP request: %v", model.ErrUpstreamUnavailable, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.config.Secret != "" {
		httpReq.Header.Set("Authorization", c.config.Secret)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("catalog", c.config.Name).Str("path", path).Msg("Catalog request failed")
		return fmt.Errorf("%w: %s: %v", model.ErrUpstreamUnavailable, c.config.Name, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to read response: %v", model.ErrUpstreamUnavailable, c.config.Name, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s%s: %w", c.config.Name, path, model.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().
			Str("catalog", c.config.Name).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Catalog answered with failure status")
		return fmt.Errorf("%w: %s answered %d", model.ErrUpstreamUnavailable, c.config.Name, resp.StatusCode)
	}

	if err := decodePayload(bodyBytes, dest); err != nil {
		log.Error().Err(err).Str("catalog", c.config.Name).Str("path", path).Msg("Catalog payload is malformed")
		return fmt.Errorf("%w: %s: failed to unmarshal response: %v", model.ErrUpstreamUnavailable, c.config.Name, err)
	}
	return nil
}

func decodePayload(body []byte, dest any) error {
	payload := bytes.TrimSpace(body)
	if len(payload) > 0 && payload[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Data) > 0 {
			payload = envelope.Data
		}
	}
	return json.Unmarshal(payload, dest)
}

// =====================================================
// BOOKS
// =====================================================

type BooksClient struct {
	*client
}

// NewBooksClient creates the HTTP books catalog
func NewBooksClient(config Config) BookCatalog {
	if config.Name == "" {
		config.Name = "books"
	}
	return &BooksClient{client: newClient(config)}
}

// FetchAll - GET /books
func (c *BooksClient) FetchAll(ctx context.Context) ([]model.BookRecord, error) {
	var books []model.BookRecord
	if err := c.get(ctx, "/books", &books); err != nil {
		// A missing collection is an outage, not an empty catalog.
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
		}
		return nil, err
	}
	if books == nil {
		books = []model.BookRecord{}
	}
	return books, nil
}

// FetchOne - GET /books/{id}
func (c *BooksClient) FetchOne(ctx context.Context, id int64) (*model.BookRecord, error) {
	var book model.BookRecord
	if err := c.get(ctx, fmt.Sprintf("/books/%d", id), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// =====================================================
// AUTHORS
// =====================================================

type AuthorsClient struct {
	*client
}

// NewAuthorsClient creates the HTTP authors catalog
func NewAuthorsClient(config Config) AuthorCatalog {
	if config.Name == "" {
		config.Name = "authors"
	}
	return &AuthorsClient{client: newClient(config)}
}

// FetchAll - GET /authors
func (c *AuthorsClient) FetchAll(ctx context.Context) ([]model.AuthorRecord, error) {
	var authors []model.AuthorRecord
	if err := c.get(ctx, "/authors", &authors); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
		}
		return nil, err
	}
	if authors == nil {
		authors = []model.AuthorRecord{}
	}
	return authors, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
