package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

// Client implements Provider against a token endpoint speaking the
// refresh-token grant (the securetoken-style API most hosted identity
// providers expose). A long-lived refresh token is exchanged for a
// short-lived ID token on every Refresh call.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      logging.Logger

	mu           sync.Mutex
	refreshToken string
	principal    Principal
	signedIn     bool
	listeners    map[int]func(Principal, bool)
	nextListener int
}

func NewClient(endpoint, apiKey string, log logging.Logger) *Client {
	return &Client{
		endpoint:  endpoint,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: 15 * time.Second},
		log:       log,
		listeners: map[int]func(Principal, bool){},
	}
}

// SignIn installs the refresh token, performs an initial refresh to verify
// it and learn the principal, and fires auth-state listeners.
func (c *Client) SignIn(ctx context.Context, refreshToken string) (Principal, error) {
	c.mu.Lock()
	c.refreshToken = refreshToken
	c.mu.Unlock()

	if _, _, err := c.Refresh(ctx); err != nil {
		c.mu.Lock()
		c.refreshToken = ""
		c.mu.Unlock()
		return Principal{}, fmt.Errorf("sign in: %w", err)
	}

	c.mu.Lock()
	c.signedIn = true
	p := c.principal
	fns := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range fns {
		fn(p, true)
	}
	return p, nil
}

// SignOut forgets the refresh token and principal and fires listeners with
// ok=false.
func (c *Client) SignOut() {
	c.mu.Lock()
	c.refreshToken = ""
	c.principal = Principal{}
	c.signedIn = false
	fns := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range fns {
		fn(Principal{}, false)
	}
}

func (c *Client) snapshotListeners() []func(Principal, bool) {
	fns := make([]func(Principal, bool), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func (c *Client) CurrentPrincipal() (Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.principal, c.signedIn
}

func (c *Client) OnAuthStateChanged(fn func(Principal, bool)) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// tokenResponse covers both spellings seen in the wild: securetoken returns
// string fields, OAuth-style endpoints return numbers.
type tokenResponse struct {
	IDToken      string          `json:"id_token"`
	AccessToken  string          `json:"access_token"`
	ExpiresIn    json.RawMessage `json:"expires_in"`
	RefreshToken string          `json:"refresh_token"`
	UserID       string          `json:"user_id"`
}

func (c *Client) Refresh(ctx context.Context) (string, time.Time, error) {
	c.mu.Lock()
	refreshToken := c.refreshToken
	c.mu.Unlock()

	if refreshToken == "" {
		return "", time.Time{}, fmt.Errorf("no refresh token")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := c.endpoint
	if c.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", time.Time{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("token endpoint: %s", resp.Status)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", time.Time{}, fmt.Errorf("token endpoint response: %w", err)
	}

	token := tr.IDToken
	if token == "" {
		token = tr.AccessToken
	}
	if token == "" {
		return "", time.Time{}, fmt.Errorf("token endpoint returned no token")
	}

	expiresAt := expiryFrom(tr.ExpiresIn, token)
	if expiresAt.IsZero() {
		return "", time.Time{}, fmt.Errorf("token expiry unknown")
	}

	c.mu.Lock()
	if tr.RefreshToken != "" {
		// Rotating refresh tokens: keep the newest one.
		c.refreshToken = tr.RefreshToken
	}
	c.principal = principalFrom(token, tr.UserID)
	c.mu.Unlock()

	return token, expiresAt, nil
}

// expiryFrom resolves the token expiry from expires_in (string or number,
// in seconds) and falls back to the JWT exp claim when the field is absent.
func expiryFrom(expiresIn json.RawMessage, token string) time.Time {
	if len(expiresIn) > 0 {
		raw := string(bytes.Trim(bytes.TrimSpace(expiresIn), `"`))
		if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
			return time.Now().Add(time.Duration(secs) * time.Second)
		}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// principalFrom extracts identity claims from the token, falling back to the
// user_id the endpoint reported. The token is not verified here; the backend
// verifies it on every authenticated request.
func principalFrom(token, userID string) Principal {
	p := Principal{UID: userID}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return p
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		p.UID = sub
	}
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		p.Name = name
	}
	return p
}
