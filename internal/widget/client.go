package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"perfwidget-backend/internal/proxy"
)

// APIError is a non-200 answer from the forwarder.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analysis failed with status %d", e.Status)
	}
	return e.Message
}

// Client posts analysis requests to the forwarder endpoint.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient returns a client for the given forwarder URL, e.g. https://site.example/api/lighthouse.
func NewClient(endpoint string) *Client {
	return &Client{Endpoint: strings.TrimSpace(endpoint), HTTPClient: http.DefaultClient}
}

// Analyze sends req and returns the raw scoring payload.
func (c *Client) Analyze(ctx context.Context, req proxy.Request) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call analysis endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var parsed struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &parsed) == nil {
			apiErr.Message = parsed.Error
		}
		return nil, apiErr
	}
	return json.RawMessage(body), nil
}
