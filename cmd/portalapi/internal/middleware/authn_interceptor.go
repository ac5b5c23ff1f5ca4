package middleware

import (
	"context"
	"log"
	"strings"

	"connectrpc.com/connect"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
)

// NewAuthnInterceptor resolves the bearer token of each request into a
// principal on the context. Requests without a valid token continue
// anonymously; the authorization interceptor decides what they may call.
func NewAuthnInterceptor(verifier TokenVerifier) connect.UnaryInterceptorFunc {
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return next(ctx, req)
			}
			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if tokenString == "" {
				return next(ctx, req)
			}

			principal, err := verifier.Verify(tokenString)
			if err != nil {
				log.Printf("bearer token rejected for %s: %v", req.Spec().Procedure, err)
				return next(ctx, req)
			}

			return next(auth.SetPrincipal(ctx, principal), req)
		})
	})
}
