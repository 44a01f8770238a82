package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://postcode.tech"
	DefaultTimeout = 30 * time.Second
)

// API paths for the two lookup variants.
const (
	simplePath = "/api/v1/postcode"
	fullPath   = "/api/v1/postcode/full"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new API client.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// GetSimple performs a lookup against the simple endpoint. A nil response
// with a nil error means no address matched; the limits snapshot is still
// valid in that case.
func (c *Client) GetSimple(ctx context.Context, postcode string, number uint32) (*SimpleResponse, *Limits, error) {
	var result SimpleResponse
	limits, found, err := c.get(ctx, simplePath, postcode, number, &result)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, limits, nil
	}
	return &result, limits, nil
}

// GetFull performs a lookup against the full endpoint. A nil response with
// a nil error means no address matched.
func (c *Client) GetFull(ctx context.Context, postcode string, number uint32) (*FullResponse, *Limits, error) {
	var result FullResponse
	limits, found, err := c.get(ctx, fullPath, postcode, number, &result)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, limits, nil
	}
	return &result, limits, nil
}

// get issues the authenticated lookup request and interprets the status
// line. On 404 the body is left unread and found is false. The usage-limit
// headers are extracted on both 200 and 404 because the API reports them
// on every exchange.
func (c *Client) get(ctx context.Context, path, postcode string, number uint32, result interface{}) (*Limits, bool, error) {
	query := url.Values{}
	query.Set("postcode", postcode)
	query.Set("number", strconv.FormatUint(uint64(number), 10))
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, &NetworkError{Err: err, URL: reqURL}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
	case http.StatusTooManyRequests:
		return nil, false, &APIError{StatusCode: resp.StatusCode}
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, false, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	limits, err := LimitsFromHeader(resp.Header)
	if err != nil {
		return nil, false, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return limits, false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, false, &ResponseError{Reason: "failed to deserialize API response", Err: err}
	}

	return limits, true, nil
}
