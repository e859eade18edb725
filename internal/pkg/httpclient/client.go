// internal/pkg/httpclient/client.go
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TokenStore provides the bearer token attached to outgoing requests.
// Clear is called when the remote side rejects the token.
type TokenStore interface {
	Token() string
	Clear()
}

// APIError represents a non-2xx response from the remote service
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Client wraps an HTTP client with bearer token injection, a request
// timestamp header, and uniform error surfacing for non-2xx responses.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenStore
}

// New creates a new client for the given base URL. tokens may be nil for
// unauthenticated use.
func New(baseURL string, tokens TokenStore, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		tokens:  tokens,
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Timestamp", time.Now().UTC().Format(time.RFC3339))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.buildError(resp.StatusCode, data)
	}

	return data, nil
}

// buildError maps a non-2xx response to an APIError. Known statuses carry
// bespoke messages; others fall back to the server-supplied message or a
// generic one. A 401 also discards the stored token.
func (c *Client) buildError(status int, body []byte) *APIError {
	var message string

	switch status {
	case http.StatusUnauthorized:
		message = "Your session has expired. Please sign in again."
		if c.tokens != nil {
			c.tokens.Clear()
		}
	case http.StatusForbidden:
		message = "You do not have permission to perform this action."
	case http.StatusNotFound:
		message = "The requested resource was not found."
	case http.StatusInternalServerError:
		message = "Something went wrong on our end. Please try again later."
	default:
		message = serverMessage(body)
		if message == "" {
			message = "The request could not be completed."
		}
	}

	return &APIError{StatusCode: status, Message: message}
}

// serverMessage extracts an error message from a JSON error payload
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
