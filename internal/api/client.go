// Package api provides the shared HTTP client for the ImobiGest REST API.
//
// Every request carries an Authorization bearer header with the token
// obtained from the injected TokenSource, a Content-Type of application/json
// and an X-Request-ID header that is also attached to the request's log
// events for correlation.
//
// Error payloads of the form {"message": "..."} are decoded and surfaced
// through *Error; the 401/403/404 statuses additionally match the package
// sentinels via errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"imobigest/internal/logger"
)

func init() {
	// The API speaks plain JSON numbers for monetary values.
	decimal.MarshalJSONWithoutQuotes = true
}

// TokenSource supplies the bearer token attached to every request.
// It is provided once at the application boundary and shared by all
// services, replacing per-component cookie readers.
type TokenSource interface {
	Token() (string, error)
}

// Client is a thin JSON client bound to a base URL and a TokenSource.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     logger.WithComponent("api-client"),
	}
}

// Get issues a GET request and decodes the response body into out when out
// is non-nil.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + firstSegment(path)

	token, err := c.tokens.Token()
	if err != nil {
		return &Error{Op: op, Err: err}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encoding request body: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := logger.WithRequestID(requestID)
	log.Debug().
		Str("method", method).
		Str("path", path).
		Msg("Sending API request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("API request failed")
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    decodeMessage(resp.Body),
			Err:        statusErr(resp.StatusCode),
		}
		log.Debug().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("message", apiErr.Message).
			Msg("API request returned an error status")
		return apiErr
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response body: %w", err)}
	}
	return nil
}

// decodeMessage extracts the "message" field from an error payload,
// tolerating non-JSON bodies.
func decodeMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// firstSegment trims query strings and path parameters down to the leading
// resource segment, keeping error operations stable across ids.
func firstSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
