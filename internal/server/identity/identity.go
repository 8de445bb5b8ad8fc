// Package identity models the external identity provider as an oracle: given
// a request context it yields the authenticated principal or none. Session
// issuance and account lifecycle stay with the provider; this package only
// verifies and transports the result.
package identity

import (
	"context"

	"photofolio/internal/common"
)

// Principal is the authenticated identity making a request.
type Principal struct {
	ID        string
	AvatarURL string
}

// Oracle resolves the current principal for a request.
type Oracle interface {
	// CurrentPrincipal returns the authenticated principal or
	// common.ErrUnauthenticated when none is present.
	CurrentPrincipal(ctx context.Context) (*Principal, error)
}

type ctxKey int

const principalKey ctxKey = 0

// WithPrincipal returns a context carrying the principal. Called by the
// transport layer after token verification.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext extracts the principal placed by WithPrincipal.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok && p != nil
}

// ContextOracle is the default Oracle: it trusts the principal the transport
// middleware stored in the context.
type ContextOracle struct{}

func (ContextOracle) CurrentPrincipal(ctx context.Context) (*Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthenticated
	}
	return p, nil
}
