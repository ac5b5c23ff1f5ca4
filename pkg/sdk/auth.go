package sdk

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/zitadel/oidc/v3/pkg/client/rp"
	"github.com/zitadel/oidc/v3/pkg/client/rp/cli"
	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Environment variables read by CheckEnvCreds.
const (
	EnvClientID     = "PORTAL_CLIENT_ID"
	EnvClientSecret = "PORTAL_CLIENT_SECRET"
)

// LoginSuccessMetadata describes a completed interactive login.
type LoginSuccessMetadata struct {
	// User is the 'sub' claim from the ID token.
	User string
	// Email is the 'email' claim, if present.
	Email     string
	ExpiresAt time.Time
}

// LoginWithDeviceCode runs the OIDC Device Authorization Flow (RFC 8628)
// against issuer. Instructions for the user are written to out while the
// token endpoint is polled. The caller decides where to persist the returned
// credentials.
func LoginWithDeviceCode(ctx context.Context, issuer, clientID string, out io.Writer) (*LoginSuccessMetadata, *Credentials, error) {
	scopes := []string{oidc.ScopeOpenID, oidc.ScopeProfile, oidc.ScopeEmail, oidc.ScopeOfflineAccess}

	// Public client: no secret and no redirect for the device flow.
	relyingParty, err := rp.NewRelyingPartyOIDC(ctx, issuer, clientID, "", "", scopes,
		rp.WithHTTPClient(defaultHTTPClient()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to discover OIDC provider at %s: %w", issuer, err)
	}

	authResponse, err := rp.DeviceAuthorization(ctx, scopes, relyingParty, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start device authorization flow: %w", err)
	}

	printDeviceCodeInstructions(out, authResponse)
	if authResponse.VerificationURIComplete != "" {
		cli.OpenBrowser(authResponse.VerificationURIComplete)
	}

	interval := time.Duration(authResponse.Interval) * time.Second
	if interval == 0 {
		interval = 5 * time.Second
	}

	token, err := rp.DeviceAccessToken(ctx, authResponse.DeviceCode, interval, relyingParty)
	if err != nil {
		return nil, nil, fmt.Errorf("device authorization failed: %w", err)
	}

	var claims *oidc.IDTokenClaims
	if token.IDToken != "" {
		claims, err = rp.VerifyIDToken[*oidc.IDTokenClaims](ctx, token.IDToken, relyingParty.IDTokenVerifier())
		if err != nil {
			log.Printf("Warning: failed to verify ID token: %v", err)
			claims = nil
		}
	}

	expiresAt := time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	creds := &Credentials{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	metadata := &LoginSuccessMetadata{ExpiresAt: expiresAt}
	if claims != nil {
		creds.Identity = "user:" + claims.Subject
		metadata.User = claims.Subject
		metadata.Email = claims.Email
	}

	return metadata, creds, nil
}

// LoginWithServiceAccount exchanges client credentials for an access token.
// Discovery is only used to find the token endpoint.
func LoginWithServiceAccount(ctx context.Context, issuer, clientID, clientSecret string) (*Credentials, error) {
	scopes := []string{oidc.ScopeOpenID, oidc.ScopeProfile, oidc.ScopeEmail}
	discoverer, err := rp.NewRelyingPartyOIDC(ctx, issuer, clientID, clientSecret, "", scopes,
		rp.WithHTTPClient(defaultHTTPClient()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider at %s: %w", issuer, err)
	}

	ccConfig := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     discoverer.OAuthConfig().Endpoint.TokenURL,
		Scopes:       scopes,
	}

	token, err := ccConfig.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange client credentials for token: %w", err)
	}

	return &Credentials{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		ExpiresAt:    token.Expiry,
		RefreshToken: token.RefreshToken,
		Identity:     "sa:" + clientID,
	}, nil
}

// RefreshToken trades a refresh token for new credentials.
func RefreshToken(ctx context.Context, issuer, clientID, refreshToken string) (*Credentials, error) {
	scopes := []string{oidc.ScopeOpenID, oidc.ScopeProfile, oidc.ScopeEmail, oidc.ScopeOfflineAccess}
	relyingParty, err := rp.NewRelyingPartyOIDC(ctx, issuer, clientID, "", "", scopes,
		rp.WithHTTPClient(defaultHTTPClient()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	tokenSource := relyingParty.OAuthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	newToken, err := tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	return &Credentials{
		AccessToken:  newToken.AccessToken,
		TokenType:    newToken.TokenType,
		RefreshToken: newToken.RefreshToken,
		ExpiresAt:    newToken.Expiry,
	}, nil
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func printDeviceCodeInstructions(out io.Writer, authResponse *oidc.DeviceAuthorizationResponse) {
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Your user code is: %s\n\n", authResponse.UserCode)
	fmt.Fprintln(out, "Visit the following URL to sign in to the training portal:")
	fmt.Fprintf(out, "  %s\n", authResponse.VerificationURI)
	if authResponse.VerificationURIComplete != "" {
		fmt.Fprintf(out, "Or open the direct link:\n  %s\n", authResponse.VerificationURIComplete)
	}
	fmt.Fprintln(out, "Waiting for authorization...")
}

// EnvCreds are service account credentials taken from the environment.
type EnvCreds struct {
	ClientID     string
	ClientSecret string
}

// CheckEnvCreds reports whether both PORTAL_CLIENT_ID and PORTAL_CLIENT_SECRET are set.
func CheckEnvCreds() (bool, EnvCreds) {
	creds := EnvCreds{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}
	return creds.ClientID != "" && creds.ClientSecret != "", creds
}
