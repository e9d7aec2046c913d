// Package client talks to the remote URL shortening service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MisterMaks/go-shortener-page/internal/logger"
	"github.com/MisterMaks/go-shortener-page/internal/page"
	"go.uber.org/zap"
)

// Used constants.
const (
	URLsPath           string = "urls"
	ContentTypeKey     string = "Content-Type"
	ApplicationJSONKey string = "application/json"

	APIURLKey     string = "api_url"
	StatusCodeKey string = "status_code"
	CodeKey       string = "code"
	URLKey        string = "url"
)

var ErrInvalidBaseURL = errors.New("invalid API base URL")

// Client is the HTTP client of the shortening service.
type Client struct {
	HTTPClient *http.Client

	BaseURL string
	Timeout time.Duration
}

// NewClient creates *Client. baseURL is the service root, the urls
// collection is appended to it.
func NewClient(httpClient *http.Client, baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBaseURL, baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HTTPClient: httpClient,
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		Timeout:    timeout,
	}, nil
}

func (c *Client) urlsURL() string {
	return c.BaseURL + "/" + URLsPath
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.Timeout)
}

// do sends req and decodes the JSON body into v whatever the status code is.
func (c *Client) do(req *http.Request, v any) error {
	ctxLogger := logger.GetContextLogger(req.Context())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	ctxLogger.Debug("Got response from shortener API",
		zap.String(APIURLKey, req.URL.String()),
		zap.Int(StatusCodeKey, resp.StatusCode),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response with status %d: %w", resp.StatusCode, err)
	}
	return nil
}

// Shorten sends rawURL to POST <base>/urls and returns the assigned code.
func (c *Client) Shorten(ctx context.Context, rawURL string) (*page.ShortenResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	body, err := json.Marshal(page.ShortenRequest{URL: rawURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.urlsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set(ContentTypeKey, ApplicationJSONKey)

	var resp page.ShortenResponse
	if err = c.do(req, &resp); err != nil {
		return nil, err
	}
	if resp.Code == "" {
		return nil, page.ErrEmptyCode
	}

	logger.GetContextLogger(ctx).Debug("URL shortened",
		zap.String(URLKey, rawURL),
		zap.String(CodeKey, resp.Code),
	)
	return &resp, nil
}

// Resolve asks GET <base>/urls/<code> for the original URL. A response
// without url is returned as is.
func (c *Client) Resolve(ctx context.Context, code string) (*page.ResolveResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.urlsURL()+"/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}

	var resp page.ResolveResponse
	if err = c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping checks that the service answers. Any status below 500 counts.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("shortener API answered %d", resp.StatusCode)
	}
	return nil
}
