package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/config"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		provider := cfg.ClientProvider

		pterm.DefaultSection.Println("Server")
		if err := provider.Ping(cmd.Context()); err != nil {
			pterm.Warning.Printf("%s is not healthy: %v\n", provider.ServerURL(), err)
		} else {
			pterm.Success.Printf("%s is healthy\n", provider.ServerURL())
		}

		pterm.DefaultSection.Println("Authentication Status")
		creds, err := provider.Credentials()
		switch {
		case errors.Is(err, sdk.ErrNoCredentials):
			if !provider.Authenticated() {
				pterm.Info.Println("Not logged in (browsing anonymously)")
				return nil
			}
			pterm.Info.Println("Using bearer token from --token")
		case err != nil:
			return fmt.Errorf("failed to load credentials: %w", err)
		default:
			if creds.IsExpired() {
				return fmt.Errorf("token expired at %s; please run `portalctl auth login`", creds.ExpiresAt.Format(time.RFC1123))
			}
			if !creds.ExpiresAt.IsZero() {
				pterm.Info.Printf("Logged in with token expiring at: %s\n", creds.ExpiresAt.Format(time.RFC1123))
			}
			if creds.Identity != "" {
				pterm.Info.Printf("Identity: %s\n", creds.Identity)
			}
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		role, err := session.CallerRole(ctx)
		if err != nil {
			return cmdutil.Explain("get role", err)
		}
		pterm.Info.Printf("Role: %s\n", role)
		return nil
	},
}
