package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	server := httptest.NewServer(nil)
	t.Cleanup(server.Close)

	client := NewClient(
		"test-token",
		logger,
		WithEndpoint(server.URL),
		WithHTTPClient(server.Client()),
	)
	return client, server
}

func TestClient_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("successful query decodes data", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"data": {"rateLimit": {"limit": 5000, "remaining": 4999, "used": 1, "resetAt": "2025-06-01T12:00:00Z"}}}`))
		})

		var out struct {
			quotaTelemetry
		}
		require.NoError(t, client.Do(ctx, "query {}", nil, &out))
		assert.Equal(t, 4999, out.RateLimit.Remaining)
		assert.Equal(t, 5000, out.RateLimit.Limit)
	})

	t.Run("429 is a rate limit error", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.WriteHeader(http.StatusTooManyRequests)
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsRateLimit(err))
	})

	t.Run("403 quota response is a rate limit error", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message": "API rate limit exceeded"}`))
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsRateLimit(err))
	})

	t.Run("5xx is transient", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsTransient(err))
	})

	t.Run("network failure is transient", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Close()

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsTransient(err))
	})

	t.Run("4xx is permanent", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`bad credentials`))
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsPermanent(err))
		assert.False(t, IsTransient(err))
	})

	t.Run("graphql RATE_LIMITED error is a rate limit error", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"data": null, "errors": [{"type": "RATE_LIMITED", "message": "API rate limit exceeded"}]}`))
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsRateLimit(err))
	})

	t.Run("graphql NOT_FOUND error is permanent", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"data": null, "errors": [{"type": "NOT_FOUND", "message": "Could not resolve to a User"}]}`))
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsPermanent(err))
	})

	t.Run("malformed response is permanent", func(t *testing.T) {
		client, server := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`invalid json`))
		})

		err := client.Do(ctx, "query {}", nil, nil)
		assert.True(t, IsPermanent(err))
	})
}
