package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles communication with the taskboard API on behalf of the web
// front-end. The caller's bearer token is relayed unchanged.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response carries one relayed API reply.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Do forwards one request to the API. Path must include the /api/v1 prefix;
// rawQuery is appended verbatim.
func (c *APIClient) Do(method, path, rawQuery, token string, body io.Reader) (*Response, error) {
	url := c.baseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call taskboard API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// PostJSON forwards a JSON payload to the API.
func (c *APIClient) PostJSON(path, token string, payload any) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.Do(http.MethodPost, path, "", token, bytes.NewReader(data))
}

// Get forwards a read to the API.
func (c *APIClient) Get(path, rawQuery, token string) (*Response, error) {
	return c.Do(http.MethodGet, path, rawQuery, token, nil)
}
