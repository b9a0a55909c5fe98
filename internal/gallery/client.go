package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Photo is one listed image as served by GET /photos. URL is nil when the
// server could not sign it.
type Photo struct {
	UUID     string  `json:"uuid"`
	URL      *string `json:"url"`
	FilePath string  `json:"filePath"`
}

// PhotoList is the GET /photos response.
type PhotoList struct {
	Images []Photo `json:"images"`
	Count  int     `json:"count"`
}

// Visible returns the photos that can be displayed.
func Visible(photos []Photo) []Photo {
	out := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if p.URL != nil {
			out = append(out, p)
		}
	}
	return out
}

// APIError is a non-2xx response from the gallery API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gallery api: %d %s", e.Status, e.Message)
}

// Client calls the gallery endpoints of the site API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient returns a Client for the API rooted at baseURL. Requests are
// traced and time out after 30s unless WithHTTPClient says otherwise.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListPhotos fetches the full ordered listing of an album.
func (c *Client) ListPhotos(ctx context.Context, prefix string) (*PhotoList, error) {
	q := url.Values{"prefix": {prefix}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var out PhotoList
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PresignImages signs up to 100 keys. Keys the server could not sign map to nil.
func (c *Client) PresignImages(ctx context.Context, keys []string) (map[string]*string, error) {
	body, err := json.Marshal(map[string][]string{"keys": keys})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/presign-images", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		URLs map[string]*string `json:"urls"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.URLs, nil
}

// Fetcher adapts ListPhotos to a Loader.
func (c *Client) Fetcher(prefix string) FetchFunc {
	return func(ctx context.Context) ([]Photo, error) {
		list, err := c.ListPhotos(ctx, prefix)
		if err != nil {
			return nil, err
		}
		return list.Images, nil
	}
}

func (c *Client) do(req *http.Request, v any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gallery api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
