package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

// Query is one call to the scoring API.
type Query struct {
	URL        string
	Key        string
	Strategy   string
	Categories []string
}

// Client calls the PageSpeed Insights runPagespeed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a scoring API client. A zero timeout leaves the
// http.Client default in place.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid scoring API endpoint %q", endpoint)
	}
	return &Client{
		endpoint:   parsed.String(),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Run performs the upstream call and returns the response body untouched on 2xx.
// A 2xx body that is not JSON is reported as a transport failure.
func (c *Client) Run(ctx context.Context, q Query) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransportFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransportFailure, redactKey(err, q.Key))
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, upstreamError(resp.StatusCode, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransportFailure, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: decode body", ErrTransportFailure)
	}
	return json.RawMessage(body), nil
}

func (c *Client) requestURL(q Query) string {
	params := url.Values{}
	params.Set("url", q.URL)
	params.Set("key", q.Key)
	params.Set("strategy", q.Strategy)
	for _, category := range q.Categories {
		params.Add("category", category)
	}
	return c.endpoint + "?" + params.Encode()
}

func upstreamError(status int, err error) *UpstreamError {
	out := &UpstreamError{Status: status}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code != 0 {
			out.Status = apiErr.Code
		}
		out.Message = strings.TrimSpace(apiErr.Message)
	}
	return out
}

// redactKey keeps the credential out of errors that echo the request URL.
func redactKey(err error, key string) string {
	msg := err.Error()
	if key == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, url.QueryEscape(key), "REDACTED")
	return strings.ReplaceAll(msg, key, "REDACTED")
}
