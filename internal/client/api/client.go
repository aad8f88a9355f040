// Package api executes HTTP requests against the backend with uniform
// header, auth, timeout, and error handling. It is the sole boundary where
// transport failures become typed errors; nothing above it sees a raw
// net/http or JSON error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

const defaultTimeout = 30 * time.Second

// TokenSource yields a bearer token, or "" for an unauthenticated caller.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client executes requests. Relative paths are resolved against baseURL;
// absolute URLs pass through unchanged.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	limiter *rate.Limiter
	timeout time.Duration
}

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying transport. Test seam.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit throttles outgoing requests client-side. rps <= 0 disables
// the limiter.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

func New(baseURL string, tokens TokenSource, log logging.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestOptions struct {
	requireAuth bool
	allow404    bool
	timeout     time.Duration
	headers     map[string]string
}

type RequestOption func(*requestOptions)

// WithoutAuth skips token resolution. Used by the public list/get endpoints.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.requireAuth = false }
}

// Allow404 downgrades a 404 response to a quiet not-found error that callers
// convert into an absent result.
func Allow404() RequestOption {
	return func(o *requestOptions) { o.allow404 = true }
}

// WithRequestTimeout overrides the client default for one request.
func WithRequestTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) { o.timeout = d }
}

// WithHeader sets an extra header. Content-Type may be overridden this way.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[key] = value
	}
}

// Do executes one request. body is JSON-encoded when non-nil; a 2xx response
// body is decoded into out unless it is empty or out is nil. Every failure
// returns a *Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	o := requestOptions{requireAuth: true, timeout: c.timeout}
	for _, opt := range opts {
		opt(&o)
	}

	targetURL := c.resolve(path)
	log := c.log.With("request_id", uuid.NewString(), "method", method, "url", targetURL)

	var token string
	if o.requireAuth {
		t, err := c.tokens.Token(ctx)
		if err != nil {
			return c.fail(ctx, log, transportError(err))
		}
		if t == "" {
			return c.fail(ctx, log, &Error{
				Kind:       KindUnauthorized,
				StatusCode: http.StatusUnauthorized,
				StatusText: http.StatusText(http.StatusUnauthorized),
				Message:    "authentication required",
			})
		}
		token = t
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return c.fail(ctx, log, &Error{Kind: KindParse, Message: "encode request body: " + err.Error()})
		}
		reqBody = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.fail(ctx, log, transportError(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, reqBody)
	if err != nil {
		return c.fail(ctx, log, &Error{Kind: KindNetwork, Message: "build request: " + err.Error()})
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, log, transportError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(ctx, log, transportError(err))
	}

	if resp.StatusCode == http.StatusNotFound && o.allow404 {
		// Expected by the caller; no error log.
		return &Error{
			Kind:       KindNotFound,
			StatusCode: http.StatusNotFound,
			StatusText: http.StatusText(http.StatusNotFound),
			Message:    "not found",
			Body:       data,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, log, statusError(resp.StatusCode, statusText(resp), data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(ctx, log, &Error{Kind: KindParse, Message: "decode response body: " + err.Error(), Body: data})
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// fail logs the classified error and returns it. Canceled requests belong to
// superseded callers and stay quiet.
func (c *Client) fail(ctx context.Context, log logging.Logger, apiErr *Error) error {
	if apiErr.Kind != KindCanceled {
		log.Error(ctx, "request failed",
			"kind", string(apiErr.Kind),
			"status", apiErr.StatusCode,
			"error", apiErr.Message,
		)
	}
	return apiErr
}

// transportError classifies failures that occurred without an HTTP response.
func transportError(err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Message: "request timed out"}
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCanceled, Message: "request canceled"}
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &Error{Kind: KindTimeout, Message: "request timed out"}
	}
	return &Error{Kind: KindNetwork, Message: err.Error()}
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strings.Split(resp.Status, " ")[0]))
}
