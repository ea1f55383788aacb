package sessions

import (
	"context"
	"time"
)

// Registry is the allow-list of currently active access tokens for the staff
// auth flow. Tokens are self-verifying; the registry exists so an explicit
// logout can invalidate a token before it expires.
//
// The member login flow deliberately bypasses the registry: member tokens
// carry no logout capability and stay usable until expiry.
type Registry interface {
	// Activate records the token as active. ttl bounds how long a backend
	// may retain the entry; backends without expiry support ignore it.
	Activate(ctx context.Context, token string, ttl time.Duration) error

	// Deactivate removes the token. Returns domain.ErrNotActive when the
	// registry does not hold it.
	Deactivate(ctx context.Context, token string) error

	// IsActive reports whether the token is currently registered.
	IsActive(ctx context.Context, token string) (bool, error)

	// Discard removes the token if present, without the ErrNotActive
	// check. Used for self-cleaning after a failed verification.
	Discard(ctx context.Context, token string) error
}
