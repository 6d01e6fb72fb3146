// Package hardcover provides a client for the Hardcover GraphQL API, the
// tag-rich tertiary source of the search pipeline. Hardcover requires an
// API key; constructing a client without one fails so misconfiguration
// surfaces at startup instead of per query.
package hardcover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	bookerrors "github.com/lepinkainen/bookhunt/internal/errors"
	"github.com/lepinkainen/bookhunt/internal/ratelimit"
)

const defaultEndpoint = "https://api.hardcover.app/v1/graphql"

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a Hardcover GraphQL client.
type Client struct {
	apiKey      string
	endpoint    string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
}

// NewClient creates a new Hardcover client. Returns ErrMissingAPIKey when
// apiKey is empty.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("hardcover: %w", bookerrors.ErrMissingAPIKey)
	}

	client := &Client{
		apiKey:      apiKey,
		endpoint:    defaultEndpoint,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: ratelimit.ForProvider("hardcover"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithEndpoint sets a custom GraphQL endpoint.
func WithEndpoint(endpoint string) Option {
	return func(client *Client) {
		if endpoint != "" {
			client.endpoint = endpoint
		}
	}
}

// WithRateLimiter sets a custom rate limiter.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// Ping verifies the API key by running a trivial query.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Me []struct {
			ID int `json:"id"`
		} `json:"me"`
	}
	return c.query(ctx, `query { me { id } }`, nil, &out)
}

// graphQLError is one entry of a GraphQL error response.
type graphQLError struct {
	Message string `json:"message"`
}

// query posts a GraphQL document and decodes the data payload into target.
func (c *Client) query(ctx context.Context, document string, variables map[string]any, target any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"query":     document,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("encoding graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return bookerrors.NewRateLimitError("hardcover")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hardcover: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("hardcover: graphql error: %s", envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("hardcover: empty graphql response")
	}

	return json.Unmarshal(envelope.Data, target)
}
