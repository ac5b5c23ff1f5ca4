package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/auth"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/cache"
	"github.com/aaalawyers/trainingportal/pkg/sdk/query"
)

// Provider yields HTTP clients, SDK clients and the cached data session for
// one CLI invocation. Anonymous use is allowed: without credentials requests
// go out without an identity and only public reads succeed.
type Provider struct {
	serverURL   string
	bearerToken string // bypasses the credential store (CI, dev tokens)
	store       sdk.CredentialStore

	credentialsOnce sync.Once
	credentials     *sdk.Credentials
	credentialsErr  error

	httpOnce sync.Once
	httpCli  *http.Client
	httpErr  error

	sessionOnce sync.Once
	session     *query.Client
	sessionErr  error
}

// NewProvider constructs a new Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{serverURL: serverURL}
}

// SetBearerToken injects a bearer token that takes priority over stored credentials.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// SetCredentialStore overrides the default ~/.portal file store.
func (p *Provider) SetCredentialStore(store sdk.CredentialStore) {
	p.store = store
}

func (p *Provider) ServerURL() string {
	return p.serverURL
}

// Credentials returns the stored credentials, or sdk.ErrNoCredentials.
func (p *Provider) Credentials() (*sdk.Credentials, error) {
	p.credentialsOnce.Do(func() {
		store := p.store
		if store == nil {
			fs, err := auth.NewFileStore()
			if err != nil {
				p.credentialsErr = err
				return
			}
			store = fs
		}

		p.credentials, p.credentialsErr = store.LoadCredentials()
	})
	return p.credentials, p.credentialsErr
}

// Authenticated reports whether requests will carry an identity.
func (p *Provider) Authenticated() bool {
	if p.bearerToken != "" {
		return true
	}
	creds, err := p.Credentials()
	return err == nil && !creds.IsExpired()
}

// HTTPClient returns an http.Client that attaches the caller's token, or
// http.DefaultClient for anonymous use.
func (p *Provider) HTTPClient(ctx context.Context) (*http.Client, error) {
	p.httpOnce.Do(func() {
		if p.bearerToken != "" {
			token := &oauth2.Token{AccessToken: p.bearerToken, TokenType: "Bearer"}
			p.httpCli = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(token))
			return
		}

		creds, err := p.Credentials()
		if errors.Is(err, sdk.ErrNoCredentials) {
			p.httpCli = http.DefaultClient
			return
		}
		if err != nil {
			p.httpErr = err
			return
		}
		if creds.IsExpired() {
			p.httpErr = errors.New("access token expired; please run `portalctl auth login`")
			return
		}

		p.httpCli = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(creds.Token()))
	})

	if p.httpErr != nil {
		return nil, p.httpErr
	}
	return p.httpCli, nil
}

// SDKClient returns an SDK client backed by HTTPClient.
func (p *Provider) SDKClient(ctx context.Context) (*sdk.Client, error) {
	httpClient, err := p.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	return sdk.NewClient(p.serverURL, sdk.WithHTTPClient(httpClient)), nil
}

// Session returns the cached data access layer for this invocation.
func (p *Provider) Session(ctx context.Context) (*query.Client, error) {
	p.sessionOnce.Do(func() {
		sdkClient, err := p.SDKClient(ctx)
		if err != nil {
			p.sessionErr = err
			return
		}
		p.session = query.New(sdkClient, cache.New())
	})
	return p.session, p.sessionErr
}

// Close tears the session down.
func (p *Provider) Close() error {
	if p.session == nil {
		return nil
	}
	return p.session.Close()
}

// Ping checks the server's /health endpoint.
func (p *Provider) Ping(ctx context.Context) error {
	ctx, cancel := ensureTimeout(ctx, 3*time.Second)
	defer cancel()

	healthURL, err := url.JoinPath(p.serverURL, "/health")
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("health endpoint returned %s", resp.Status)
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}
	if payload.Status != "ok" {
		return fmt.Errorf("server reports status %q", payload.Status)
	}
	return nil
}

func ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}
