package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the remote operations the UI depends on. Implemented by
// *Client; tests substitute a fake.
type Fetcher interface {
	FetchCategories(ctx context.Context) ([]Category, error)
	FetchPage(ctx context.Context, q Query) (ResultPage, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://dummyjson.com"
	defaultUserAgent = "pex/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty value uses the
// public dummyjson endpoint.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCategories retrieves the category list.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Category
	if err := c.do(ctx, "/products/categories", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchPage retrieves one page of products for the given query descriptor.
// When the payload omits total, the item count stands in for it.
func (c *Client) FetchPage(ctx context.Context, q Query) (ResultPage, error) {
	if c == nil {
		return ResultPage{}, fmt.Errorf("client is nil")
	}
	if q.PageSize <= 0 {
		return ResultPage{}, fmt.Errorf("page size must be positive, got %d", q.PageSize)
	}

	values := url.Values{}
	values.Set("limit", strconv.Itoa(q.PageSize))
	values.Set("skip", strconv.Itoa(q.Offset))

	var path string
	switch q.Kind {
	case KindSearch:
		path = "/products/search"
		values.Set("q", q.Value)
	case KindCategory:
		path = "/products/category/" + url.PathEscape(q.Value)
	default:
		path = "/products"
	}

	var payload listingResponse
	if err := c.do(ctx, path, values, &payload); err != nil {
		return ResultPage{}, err
	}

	page := ResultPage{Products: payload.Products}
	if payload.Total != nil {
		page.Total = *payload.Total
	} else {
		page.Total = len(payload.Products)
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, path string, values url.Values, dest any) error {
	rel := &url.URL{Path: path}
	if values != nil {
		rel.RawQuery = values.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
