package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Clear()        { f.cleared = true }

func TestClient_RequestHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotTimestamp, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotTimestamp = r.Header.Get("X-Request-Timestamp")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(server.URL, &fakeTokens{token: "token-123"}, time.Second)

	body, err := client.Post(context.Background(), "/orders", map[string]string{"code": "HEMAT10"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)

	_, err = time.Parse(time.RFC3339, gotTimestamp)
	assert.NoError(t, err)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, time.Second)

	_, err := client.Get(context.Background(), "/products")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &fakeTokens{token: "stale"}
	client := New(server.URL, tokens, time.Second)

	_, err := client.Get(context.Background(), "/cart")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Your session has expired. Please sign in again.", apiErr.Message)
	assert.True(t, tokens.cleared)
}

func TestClient_StatusMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    interface{}
		message string
	}{
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			message: "You do not have permission to perform this action.",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			message: "The requested resource was not found.",
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			message: "Something went wrong on our end. Please try again later.",
		},
		{
			name:    "server supplied message",
			status:  http.StatusUnprocessableEntity,
			body:    map[string]string{"error": "cart is empty"},
			message: "cart is empty",
		},
		{
			name:    "unparseable body",
			status:  http.StatusBadGateway,
			message: "The request could not be completed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != nil {
					json.NewEncoder(w).Encode(tt.body)
				}
			}))
			defer server.Close()

			client := New(server.URL, nil, time.Second)

			_, err := client.Get(context.Background(), "/")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	client := New(server.URL, nil, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/slow")
	assert.Error(t, err)
}
