package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/TRu-S3/hackmatch-go/internal/client/identity"
	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

// defaultWaitTimeout bounds the wait for the first auth-state notification.
// The original design waited forever; here the wait is always bounded.
const defaultWaitTimeout = 15 * time.Second

// Provider produces a currently-valid bearer token, or "" when the caller
// is unauthenticated. Lookup order: stored credential (with expiry buffer),
// then forced refresh while a principal is already known, then a one-shot
// wait for the provider's first auth-state notification.
//
// Refresh failures are logged without token material and reported as
// unauthenticated rather than as errors; the HTTP client turns a missing
// token on an authenticated request into a 401.
type Provider struct {
	store    Store
	identity identity.Provider
	log      logging.Logger

	group       singleflight.Group
	waitTimeout time.Duration
	now         func() time.Time
}

type ProviderOption func(*Provider)

// WithWaitTimeout bounds the auth-state wait in step three.
func WithWaitTimeout(d time.Duration) ProviderOption {
	return func(p *Provider) { p.waitTimeout = d }
}

// WithClock replaces the time source. Test seam.
func WithClock(now func() time.Time) ProviderOption {
	return func(p *Provider) { p.now = now }
}

func NewProvider(store Store, id identity.Provider, log logging.Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		store:       store,
		identity:    id,
		log:         log,
		waitTimeout: defaultWaitTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns a valid bearer token or "" for an unauthenticated caller.
// The only error paths are context cancellation and expiry of ctx itself.
func (p *Provider) Token(ctx context.Context) (string, error) {
	if cred, ok := p.store.Read(); ok && cred.Usable(p.now()) {
		return cred.Token, nil
	}

	if _, ok := p.identity.CurrentPrincipal(); ok {
		return p.refresh(ctx), nil
	}

	return p.waitForAuthState(ctx)
}

// refresh forces a new token from the identity provider and persists it.
// Concurrent callers are coalesced onto a single in-flight refresh.
func (p *Provider) refresh(ctx context.Context) string {
	v, err, _ := p.group.Do("refresh", func() (any, error) {
		token, expiresAt, err := p.identity.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		cred := Credential{Token: token, ExpiresAt: expiresAt.Unix()}
		if werr := p.store.Write(cred); werr != nil {
			// Best-effort persistence: the fresh token is still returned.
			p.log.Warn(ctx, "credential persist failed", "error", werr)
		}
		return token, nil
	})
	if err != nil {
		p.log.Error(ctx, "token refresh failed", "error", err)
		return ""
	}
	return v.(string)
}

// waitForAuthState consumes at most one auth-state notification. A sign-out
// notification clears the stored credential; a sign-in triggers a refresh.
// The subscription is released on every exit path.
func (p *Provider) waitForAuthState(ctx context.Context) (string, error) {
	ch := make(chan bool, 1)
	var once sync.Once
	unsubscribe := p.identity.OnAuthStateChanged(func(_ identity.Principal, ok bool) {
		once.Do(func() { ch <- ok })
	})
	defer unsubscribe()

	timer := time.NewTimer(p.waitTimeout)
	defer timer.Stop()

	select {
	case ok := <-ch:
		if !ok {
			if err := p.store.Clear(); err != nil {
				p.log.Warn(ctx, "credential clear failed", "error", err)
			}
			return "", nil
		}
		return p.refresh(ctx), nil
	case <-timer.C:
		p.log.Debug(ctx, "no auth-state notification before deadline")
		return "", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// SignOut clears the stored credential. Call alongside the identity
// provider's own sign-out.
func (p *Provider) SignOut(ctx context.Context) {
	if err := p.store.Clear(); err != nil {
		p.log.Warn(ctx, "credential clear failed", "error", err)
	}
}
