// Package api provides the HTTP client for the FinLens backend. Every
// request the CLI makes goes through this one chokepoint: bearer-token
// attachment, the fixed timeout, and error classification all live here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finlens/finlens/internal/common"
	"github.com/finlens/finlens/internal/session"
)

// DefaultTimeout is the fixed per-request timeout.
const DefaultTimeout = 10 * time.Second

// Backend endpoint paths, relative to the versioned base URL.
const (
	pathLogin           = "/auth/login"
	pathRegister        = "/auth/register"
	pathGetUser         = "/auth/getUser"
	pathUploadImage     = "/auth/upload-image"
	pathExpenses        = "/expense/"
	pathExpenseDownload = "/expense/download"
	pathIncomes         = "/income/"
	pathIncomeDownload  = "/income/download"
	pathDashboard       = "/dashboard"
	pathBudgetSet       = "/budget/set"
	pathBudgetAll       = "/budget/all"
	pathBudgetAlerts    = "/budget/alerts"
	pathScanReceipt     = "/ocr/scan-receipt"
)

// Config holds API client configuration.
type Config struct {
	// BaseURL is the backend origin plus the versioned path prefix, e.g.
	// "http://localhost:8000/api/v1".
	BaseURL string
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: api base URL is required", common.ErrMissingConfig)
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("%w: invalid api base URL: %v", common.ErrInvalidConfig, err)
	}
	return nil
}

// Client talks to the FinLens backend. It is safe for sequential use from a
// single command invocation; the persisted session token is the only state
// shared between invocations.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	logger     *slog.Logger
}

// NewClient creates a client for the given backend. The session store
// supplies the bearer token for authenticated calls and is cleared when the
// backend reports the session expired.
func NewClient(cfg Config, sessions *session.Store) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		sessions:   sessions,
		logger:     slog.Default().With("component", "api"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// APIError is a non-2xx response from the backend, carrying the detail
// message FastAPI-style handlers put in the body.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: %d - %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error: %d", e.StatusCode)
}

// classify applies the cross-cutting error policy for a finished call. It
// never swallows: every branch hands the error back to the caller after its
// side effect.
//
//   - 401 off the login endpoint means the session expired: the persisted
//     token is cleared and the caller gets a UserError carrying
//     ErrSessionExpired.
//   - 401 on the login endpoint is a credential error and passes through
//     with the server's detail intact.
//   - 5xx is logged as a generic server failure and wrapped with ErrServer.
//   - A client-side timeout is logged and wrapped with ErrTimeout.
//   - Everything else passes through unchanged.
func (c *Client) classify(endpoint string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized && endpoint != pathLogin:
			if clearErr := c.sessions.Clear(); clearErr != nil {
				c.logger.Warn("Could not clear expired session", "error", clearErr)
			}
			c.logger.Info("Session expired, cleared saved token", "endpoint", endpoint)
			return common.NewUserError("Session expired, run 'finlens login' to sign in again",
				fmt.Errorf("%w: %w", common.ErrSessionExpired, err))
		case apiErr.StatusCode >= http.StatusInternalServerError:
			c.logger.Error("Server error", "endpoint", endpoint, "status", apiErr.StatusCode)
			return common.NewUserError("Server error, please try again later",
				fmt.Errorf("%w: %w", common.ErrServer, err))
		}
		return err
	}

	if isTimeout(err) {
		c.logger.Error("Request timed out", "endpoint", endpoint)
		return common.NewUserError("Request timed out, please try again",
			fmt.Errorf("%w: %w", common.ErrTimeout, err))
	}

	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// newRequest builds a request against the base URL with the default headers
// and the bearer token when a session exists.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// send executes a request and decodes a JSON response body into out (when
// out is non-nil). Non-2xx statuses come back as *APIError.
func (c *Client) send(req *http.Request, out any) error {
	c.logger.Debug("API request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// sendRaw executes a request and returns the response body as opaque bytes.
// Used for the spreadsheet downloads, which must never be JSON-parsed.
func (c *Client) sendRaw(req *http.Request) ([]byte, error) {
	c.logger.Debug("API request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// readAPIError extracts the backend's detail message from an error response.
func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var payload struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	} else if len(body) > 0 {
		detail = strings.TrimSpace(string(body))
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}

// getJSON issues a GET and decodes the response.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// postJSON issues a POST with a JSON body and decodes the response.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.send(req, out)
}
