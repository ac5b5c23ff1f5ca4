package auth

import (
	"context"
	"strings"
)

// Identity prefixes. Users come from interactive logins, service accounts
// from client credentials.
const (
	PrefixUser           = "user:"
	PrefixServiceAccount = "sa:"
)

// Principal is the authenticated caller propagated through the request context.
type Principal struct {
	// Identity is the prefixed caller id, e.g. user:alice.
	Identity string
	// TokenID is the jti of the bearer token.
	TokenID string
}

// IsServiceAccount reports whether the principal authenticated with client credentials.
func (p Principal) IsServiceAccount() bool {
	return strings.HasPrefix(p.Identity, PrefixServiceAccount)
}

type principalContextKey struct{}

// SetPrincipal stores the authenticated principal on the context.
func SetPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext retrieves the authenticated principal. ok is false
// for anonymous requests.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok && principal.Identity != ""
}
