package middleware

import (
	"context"

	"github.com/casbin/casbin/v2"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// RoleResolver maps an identity to its role. The empty identity is anonymous.
type RoleResolver interface {
	RoleOf(ctx context.Context, identity string) (string, error)
}

// AuthzDependencies groups the collaborators of the authorization interceptor.
type AuthzDependencies struct {
	Enforcer casbin.IEnforcer
	Roles    RoleResolver
}
