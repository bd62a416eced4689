// Package api is a typed client for the hotel reservation backend.
// The backend is an opaque HTTP JSON API: every piece of business
// logic, from availability to payment settlement, lives behind it and
// this package only shapes requests and decodes responses. Expected
// failures are returned as values, never panics, so handlers can branch
// on them without exception-style control flow.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/sony/gobreaker"
)

// ErrUnauthorized is returned for any 401-class response. Callers must
// treat it globally: tear the session down and send the user to the
// login page, no matter which feature triggered the call.
var ErrUnauthorized = errors.New("unauthorized")

// genericFailure is shown when the backend gives no usable message.
const genericFailure = "request failed, please try again"

// Error is a server-reported business failure. Message is already
// prioritized for display: the structured message field when present,
// otherwise the first field-specific validation message, otherwise a
// generic fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
}

// Client calls the reservation backend. A zero Client is not usable;
// construct with New.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// New builds a Client for the given base URL (e.g.
// "http://localhost:8080/api"). Timeouts are whatever the default
// transport provides; there is no retry logic anywhere in this client.
// A circuit breaker sheds calls after repeated transport failures so a
// dead backend does not pile up waiting requests.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "backend",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// do performs one request against the backend. A non-empty token is
// attached as a bearer credential. body (when non-nil) is JSON-encoded;
// out (when non-nil) receives the decoded success payload. Failures
// come back as ErrUnauthorized, *Error, or a transport error wrapped
// with a generic message.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.breaker.Execute(func() (any, error) {
		return c.http.Do(req)
	})
	if err != nil {
		// Transport failure or open breaker: the request never
		// produced a response. Surface the generic fallback.
		return &Error{Status: 0, Message: genericFailure}
	}
	resp := res.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: genericFailure}
	}
	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: extractMessage(raw)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Status: resp.StatusCode, Message: genericFailure}
		}
	}
	return nil
}

// extractMessage pulls a user-facing message out of an error body.
// Priority: the structured "message" field, then the first
// field-specific validation message (alphabetical for determinism),
// then a generic fallback.
func extractMessage(raw []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return genericFailure
	}
	if m, ok := fields["message"].(string); ok && m != "" {
		return m
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "success" || k == "status" || k == "timestamp" {
			continue
		}
		if v, ok := fields[k].(string); ok && v != "" {
			return v
		}
	}
	return genericFailure
}
