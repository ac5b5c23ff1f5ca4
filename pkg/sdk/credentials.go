package sdk

import (
	"errors"
	"time"

	"golang.org/x/oauth2"
)

// ErrNoCredentials is returned by a CredentialStore holding nothing.
var ErrNoCredentials = errors.New("no stored credentials")

// Credentials represents the authentication credentials.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Identity     string    `json:"identity,omitempty"` // "user:{subject}" or "sa:{clientID}"
}

func (c *Credentials) IsExpired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// Token converts the credentials into an oauth2 token.
func (c *Credentials) Token() *oauth2.Token {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    tokenType,
		RefreshToken: c.RefreshToken,
		Expiry:       c.ExpiresAt,
	}
}

// CredentialStore persists credentials between CLI invocations.
type CredentialStore interface {
	SaveCredentials(creds *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
