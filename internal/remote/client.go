package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/goliatone/go-catalog/internal/catalog"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/posts"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Config carries the connection settings for a hosted catalog backend.
type Config struct {
	// BaseURL is the root of the remote API, e.g. https://backend.example.com.
	BaseURL string
	// APIKey is sent as a bearer token when present.
	APIKey string
	// Timeout bounds each request. Defaults to 15s.
	Timeout time.Duration
	// RetryCount retries transient failures. Zero disables retries.
	RetryCount int
}

// Client reads categories, items, and posts from a remote catalog API.
// A missing record maps to catalog.NotFoundError and every transport or
// HTTP failure maps to catalog.FetchError so callers never confuse an
// unreachable backend with an empty catalog.
type Client struct {
	base   string
	http   *resty.Client
	logger interfaces.Logger
}

type Option func(*Client)

func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	retries := cfg.RetryCount
	if retries < 0 {
		retries = 0
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		httpClient.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}

	client := &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   httpClient,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

var (
	_ catalog.CategoryRepository = (*Client)(nil)
	_ catalog.ItemRepository     = (*itemClient)(nil)
	_ posts.PostRepository       = (*postClient)(nil)
)

func (c *Client) ListCategories(ctx context.Context, kind catalog.Kind) ([]*catalog.Category, error) {
	var records []*catalog.Category
	endpoint := fmt.Sprintf("%s/api/categories?kind=%s", c.base, url.QueryEscape(string(kind)))
	if err := c.getJSON(ctx, "category", endpoint, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// List implements catalog.CategoryRepository.
func (c *Client) List(ctx context.Context, kind catalog.Kind) ([]*catalog.Category, error) {
	return c.ListCategories(ctx, kind)
}

func (c *Client) GetBySlug(ctx context.Context, kind catalog.Kind, slug string) (*catalog.Category, error) {
	record := &catalog.Category{}
	endpoint := fmt.Sprintf("%s/api/categories/%s/%s", c.base, url.PathEscape(string(kind)), url.PathEscape(slug))
	if err := c.getJSONOne(ctx, "category", slug, endpoint, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	record := &catalog.Category{}
	endpoint := fmt.Sprintf("%s/api/categories/id/%s", c.base, url.PathEscape(id.String()))
	if err := c.getJSONOne(ctx, "category", id.String(), endpoint, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Items exposes the same client as a catalog.ItemRepository.
func (c *Client) Items() catalog.ItemRepository {
	return &itemClient{c}
}

// Posts exposes the same client as a posts.PostRepository.
func (c *Client) Posts() posts.PostRepository {
	return &postClient{c}
}

type itemClient struct {
	*Client
}

func (c *itemClient) List(ctx context.Context, kind catalog.Kind) ([]*catalog.Item, error) {
	var records []*catalog.Item
	endpoint := fmt.Sprintf("%s/api/items?kind=%s", c.base, url.QueryEscape(string(kind)))
	if err := c.getJSON(ctx, "item", endpoint, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *itemClient) GetBySlug(ctx context.Context, kind catalog.Kind, slug string) (*catalog.Item, error) {
	record := &catalog.Item{}
	endpoint := fmt.Sprintf("%s/api/items/%s/%s", c.base, url.PathEscape(string(kind)), url.PathEscape(slug))
	if err := c.getJSONOne(ctx, "item", slug, endpoint, record); err != nil {
		return nil, err
	}
	return record, nil
}

type postClient struct {
	*Client
}

func (c *postClient) List(ctx context.Context) ([]*posts.Post, error) {
	var records []*posts.Post
	endpoint := fmt.Sprintf("%s/api/posts", c.base)
	if err := c.getJSON(ctx, "post", endpoint, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *postClient) GetBySlug(ctx context.Context, slug string) (*posts.Post, error) {
	record := &posts.Post{}
	endpoint := fmt.Sprintf("%s/api/posts/%s", c.base, url.PathEscape(slug))
	if err := c.getJSONOne(ctx, "post", slug, endpoint, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *postClient) Create(ctx context.Context, record *posts.Post) (*posts.Post, error) {
	created := &posts.Post{}
	endpoint := fmt.Sprintf("%s/api/posts", c.base)
	if err := c.sendJSON(ctx, "POST", "post", endpoint, record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *postClient) Update(ctx context.Context, record *posts.Post) (*posts.Post, error) {
	updated := &posts.Post{}
	endpoint := fmt.Sprintf("%s/api/posts/%s", c.base, url.PathEscape(record.Slug))
	if err := c.sendJSON(ctx, "PUT", "post", endpoint, record, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) getJSON(ctx context.Context, resource, endpoint string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		c.logger.Error("remote fetch failed", "resource", resource, "error", err)
		return &catalog.FetchError{Resource: resource, Err: err}
	}

	if resp.IsError() {
		err := fmt.Errorf("remote returned %d for %s", resp.StatusCode(), endpoint)
		c.logger.Error("remote fetch failed", "resource", resource, "status", resp.StatusCode())
		return &catalog.FetchError{Resource: resource, Err: err}
	}

	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return &catalog.FetchError{Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func (c *Client) getJSONOne(ctx context.Context, resource, key, endpoint string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		c.logger.Error("remote fetch failed", "resource", resource, "key", key, "error", err)
		return &catalog.FetchError{Resource: resource, Err: err}
	}

	if resp.StatusCode() == 404 {
		return &catalog.NotFoundError{Resource: resource, Key: key}
	}

	if resp.IsError() {
		err := fmt.Errorf("remote returned %d for %s", resp.StatusCode(), endpoint)
		c.logger.Error("remote fetch failed", "resource", resource, "status", resp.StatusCode())
		return &catalog.FetchError{Resource: resource, Err: err}
	}

	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return &catalog.FetchError{Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, resource, endpoint string, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	var resp *resty.Response
	var err error
	if method == "PUT" {
		resp, err = req.Put(endpoint)
	} else {
		resp, err = req.Post(endpoint)
	}
	if err != nil {
		return &catalog.FetchError{Resource: resource, Err: err}
	}

	if resp.IsError() {
		return &catalog.FetchError{Resource: resource, Err: fmt.Errorf("remote returned %d for %s", resp.StatusCode(), endpoint)}
	}

	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return &catalog.FetchError{Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
