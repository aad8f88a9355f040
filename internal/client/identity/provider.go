// Package identity wraps the external identity provider: the current
// principal, forced token refresh, and auth-state change notifications.
package identity

import (
	"context"
	"time"
)

// Principal is the authenticated identity as known to the provider.
type Principal struct {
	UID   string
	Email string
	Name  string
}

// Provider is the capability surface the rest of the client depends on.
// It is injected rather than imported as a singleton so the refresh race
// can be exercised deterministically in tests.
type Provider interface {
	// CurrentPrincipal reports the principal the provider already knows
	// about without waiting. The answer may be stale.
	CurrentPrincipal() (Principal, bool)

	// Refresh forces a fresh token from the provider and returns it with
	// its expiry.
	Refresh(ctx context.Context) (token string, expiresAt time.Time, err error)

	// OnAuthStateChanged registers fn for subsequent auth-state changes and
	// returns an unsubscribe func. On sign-out fn receives ok=false.
	OnAuthStateChanged(fn func(p Principal, ok bool)) (unsubscribe func())
}
