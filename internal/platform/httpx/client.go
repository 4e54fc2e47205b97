package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/id"
)

// TokenSource yields the current bearer token. An empty token with a nil
// error means the request goes out unauthenticated and the server decides.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthErrorPolicy decides what happens when the backend answers 401/403.
// Notify always fires (the blocking diagnostic); ClearSession additionally
// wipes the stored credentials, which is off by default so in-progress form
// state is not lost on an expired token.
type AuthErrorPolicy struct {
	ClearSession bool
	Notify       func(*APIError)
	Clear        func(ctx context.Context) error
}

// APIError carries the backend's view of a failed request.
type APIError struct {
	Status  int
	URL     string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.URL, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.URL)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	default:
		return nil
	}
}

// IsAuthError reports whether err is a rejected-credential response.
func IsAuthError(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrForbidden)
}

type Client struct {
	base    string
	http    *http.Client
	tokens  TokenSource
	policy  AuthErrorPolicy
	ids     id.Generator
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, policy AuthErrorPolicy, ids id.Generator, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		policy: policy,
		ids:    ids,
		log:    log,
	}
}

// Get decodes a 2xx JSON body into out (out may be nil to discard).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", c.ids.New())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil && !errors.Is(err, apperrors.ErrNotLoggedIn) {
			return fmt.Errorf("load token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug("api request", zap.String("method", method), zap.String("url", target))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		apiErr := c.readError(resp, target)
		c.log.Warn("auth error",
			zap.Int("status", apiErr.Status),
			zap.String("url", apiErr.URL),
			zap.String("message", apiErr.Message),
		)
		if c.policy.Notify != nil {
			c.policy.Notify(apiErr)
		}
		if c.policy.ClearSession && c.policy.Clear != nil {
			if clearErr := c.policy.Clear(ctx); clearErr != nil {
				c.log.Error("clear session after auth error", zap.Error(clearErr))
			}
		}
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.readError(resp, target)
		c.log.Debug("api error", zap.Int("status", apiErr.Status), zap.String("url", apiErr.URL))
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrDecode, method, target, err)
	}
	return nil
}

// readError extracts the backend's message field when the body carries one.
func (c *Client) readError(resp *http.Response, target string) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, URL: target}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	envelope := struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}{}
	if err := json.Unmarshal(payload, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			apiErr.Message = envelope.Message
		case envelope.Error != "":
			apiErr.Message = envelope.Error
		case envelope.Detail != "":
			apiErr.Message = envelope.Detail
		}
	}
	return apiErr
}
