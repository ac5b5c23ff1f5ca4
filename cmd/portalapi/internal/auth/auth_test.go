package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, "http://localhost:8080")
	require.NoError(t, err)

	token, expiresAt, err := issuer.Mint("user:alice", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	principal, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user:alice", principal.Identity)
	assert.NotEmpty(t, principal.TokenID)
	assert.False(t, principal.IsServiceAccount())
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, "http://localhost:8080")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenIssuer("fedcba9876543210fedcba9876543210", "http://localhost:8080")
		require.NoError(t, err)
		token, _, err := other.Mint("user:alice", time.Hour)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewTokenIssuer(testSecret, "http://elsewhere")
		require.NoError(t, err)
		token, _, err := other.Mint("user:alice", time.Hour)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := issuer.Mint("sa:ci", time.Hour)
		require.NoError(t, err)

		later := *issuer
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = later.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unprefixed identity", func(t *testing.T) {
		_, _, err := issuer.Mint("alice", time.Hour)
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := NewTokenIssuer("short", "x")
		assert.Error(t, err)
	})
}

func TestEnforcer(t *testing.T) {
	enforcer, err := InitEnforcer()
	require.NoError(t, err)

	tests := []struct {
		role    string
		obj     string
		act     string
		allowed bool
	}{
		{RoleGuest, ObjectContent, ActionRead, true},
		{RoleGuest, ObjectRole, ActionRead, true},
		{RoleGuest, ObjectProgress, ActionRead, false},
		{RoleGuest, ObjectContent, ActionWrite, false},
		{RoleUser, ObjectContent, ActionRead, true},
		{RoleUser, ObjectProgress, ActionWrite, true},
		{RoleUser, ObjectProfile, ActionWrite, true},
		{RoleUser, ObjectProfile, ActionReadAny, false},
		{RoleUser, ObjectContent, ActionWrite, false},
		{RoleUser, ObjectRole, ActionWrite, false},
		{RoleAdmin, ObjectContent, ActionWrite, true},
		{RoleAdmin, ObjectRole, ActionWrite, true},
		{RoleAdmin, ObjectProgress, ActionWrite, true},
		{RoleAdmin, ObjectProfile, ActionReadAny, true},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.obj+"/"+tt.act, func(t *testing.T) {
			allowed, err := enforcer.Enforce(tt.role, tt.obj, tt.act)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	ctx := SetPrincipal(context.Background(), Principal{Identity: "sa:ci"})
	p, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.True(t, p.IsServiceAccount())

	_, ok = PrincipalFromContext(SetPrincipal(context.Background(), Principal{}))
	assert.False(t, ok)
}
