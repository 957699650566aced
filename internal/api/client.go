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
	logrus "github.com/sirupsen/logrus"

	"github.com/mighty-stack/swiftship/internal/credential"
)

// Error is a failed backend response. Message carries the server-supplied
// "message" (or "error") field when the body had one, otherwise the HTTP
// status text.
type Error struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is a 401/403 response. A view observing one
// must invalidate the session and navigate to login.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// Client wraps all outbound calls to the SwiftShip backend: base URL join,
// JSON bodies, and the bearer token read from the credential store on every
// request.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *credential.Store
}

// New builds a client against baseURL. creds may hold no token yet; requests
// simply go out unauthenticated until sign-in persists one.
func New(baseURL string, creds *credential.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if tok := c.creds.Load(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("request_id", requestID).
			Debugf("request failed: %s %s", method, path)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read %s %s: %w", method, path, err)
	}

	logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"status":     resp.StatusCode,
	}).Debugf("%s %s", method, path)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw, resp.Status),
			RequestID:  requestID,
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("api: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// extractMessage pulls the server's error text out of a failure body. The
// backend answers with {"message": "..."} ({"error": "..."} on a few older
// endpoints); anything undecodable falls back to the HTTP status line.
func extractMessage(raw []byte, statusLine string) string {
	var body struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Err != "" {
			return body.Err
		}
	}
	return statusLine
}
