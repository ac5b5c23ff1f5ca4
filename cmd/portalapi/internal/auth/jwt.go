package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for tokens that fail signature, issuer or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer mints and verifies HS256 bearer tokens for development use.
type TokenIssuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenIssuer returns an issuer signing with secret.
func NewTokenIssuer(secret, issuer string) (*TokenIssuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("token secret must be at least 16 bytes")
	}
	return &TokenIssuer{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// Mint returns a signed token whose subject is identity.
func (t *TokenIssuer) Mint(identity string, ttl time.Duration) (string, time.Time, error) {
	if !strings.HasPrefix(identity, PrefixUser) && !strings.HasPrefix(identity, PrefixServiceAccount) {
		return "", time.Time{}, fmt.Errorf("identity %q must start with %q or %q", identity, PrefixUser, PrefixServiceAccount)
	}

	now := t.now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the token and returns the principal it names.
func (t *TokenIssuer) Verify(token string) (Principal, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return Principal{Identity: claims.Subject, TokenID: claims.ID}, nil
}
