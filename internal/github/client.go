package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const defaultEndpoint = "https://api.github.com/graphql"

// Client is a thin GraphQL transport for the GitHub API. It classifies every
// failure into the retry taxonomy (rate-limit, transient, permanent) and
// leaves retrying and quota bookkeeping to the Fetcher.
type Client struct {
	client   *http.Client
	endpoint string
	logger   *logrus.Logger
}

// ClientOption allows configuring the client.
type ClientOption func(*Client)

// WithEndpoint overrides the GraphQL endpoint, used by tests.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a GraphQL client authenticated with the given token.
func NewClient(token string, logger *logrus.Logger, opts ...ClientOption) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = 60 * time.Second

	client := &Client{
		client:   httpClient,
		endpoint: defaultEndpoint,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do posts one GraphQL query and decodes the data object into out. Errors are
// returned already classified; callers never inspect status codes themselves.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return NewPermanentError(0, "failed to encode query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return NewPermanentError(0, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return NewTransientError(0, "request failed", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return NewTransientError(resp.StatusCode, "failed to read response body", err)
	}

	if err := classifyStatus(resp, body); err != nil {
		return err
	}

	var envelope graphQLEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return NewPermanentError(resp.StatusCode, "failed to decode response", err)
	}

	if err := classifyGraphQLErrors(envelope.Errors); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return NewPermanentError(resp.StatusCode, "failed to decode response data", err)
		}
	}

	return nil
}

// classifyStatus maps a non-200 HTTP response into the retry taxonomy.
func classifyStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewRateLimitError(resetFromHeaders(resp), "too many requests")
	case resp.StatusCode == http.StatusForbidden && strings.Contains(strings.ToLower(string(body)), "rate limit"):
		return NewRateLimitError(resetFromHeaders(resp), "secondary rate limit")
	case resp.StatusCode >= 500:
		return NewTransientError(resp.StatusCode, "server error", nil)
	default:
		return NewPermanentError(resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}
}

// classifyGraphQLErrors maps the errors array of a 200 response.
func classifyGraphQLErrors(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Type == "RATE_LIMITED" {
			return NewRateLimitError(time.Time{}, e.Message)
		}
		messages = append(messages, e.Message)
	}

	for _, e := range errs {
		if e.Type == "NOT_FOUND" {
			return NewPermanentError(http.StatusNotFound, e.Message, nil)
		}
	}

	return NewPermanentError(http.StatusOK, fmt.Sprintf("query failed: %s", strings.Join(messages, "; ")), nil)
}

// resetFromHeaders reads the primary reset epoch or Retry-After seconds.
func resetFromHeaders(resp *http.Response) time.Time {
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if epoch, err := strconv.ParseInt(reset, 10, 64); err == nil {
			return time.Unix(epoch, 0)
		}
	}
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.ParseInt(retryAfter, 10, 64); err == nil {
			return time.Now().Add(time.Duration(seconds) * time.Second)
		}
	}
	return time.Time{}
}
