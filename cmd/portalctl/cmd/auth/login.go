package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/auth"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/config"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

const defaultClientID = "portalctl"

var (
	issuer       string
	clientID     string
	clientSecret string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the training portal",
	Long: `Authenticates with the portal's identity provider.

Two methods are supported:
1. Interactive Login (default): Initiates a device authorization flow for human users.
2. Service Account Login: Uses a client ID and secret for non-interactive authentication.
   Use the --client-id and --client-secret flags, or set PORTAL_CLIENT_ID and PORTAL_CLIENT_SECRET.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := auth.NewFileStore()
		if err != nil {
			return fmt.Errorf("failed to create credential store: %w", err)
		}

		iss := issuer
		if iss == "" {
			iss = cfg.ServerURL
		}

		id, secret := clientID, clientSecret
		if secret == "" {
			if ok, env := sdk.CheckEnvCreds(); ok {
				fmt.Println("Using service account credentials from environment variables.")
				id, secret = env.ClientID, env.ClientSecret
			}
		}

		if secret != "" {
			fmt.Println("Authenticating as service account...")
			creds, err := sdk.LoginWithServiceAccount(cmd.Context(), iss, id, secret)
			if err != nil {
				return err
			}
			if err := store.SaveCredentials(creds); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}
			fmt.Println("------------------------------------------------------------")
			fmt.Printf("✅ Service account login successful!\n")
			fmt.Printf("Authenticated with client ID: %s\n", id)
			return nil
		}

		if cfg.NonInteractive {
			return fmt.Errorf("interactive login disabled; provide --client-id and --client-secret")
		}

		meta, creds, err := sdk.LoginWithDeviceCode(cmd.Context(), iss, id, os.Stdout)
		if err != nil {
			return err
		}
		if err := store.SaveCredentials(creds); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		fmt.Println("------------------------------------------------------------")
		fmt.Printf("✅ Interactive login successful!\n")
		fmt.Printf("Authenticated as: %s (%s)\n", meta.User, meta.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&issuer, "issuer", "", "OIDC issuer URL (defaults to the server URL)")
	loginCmd.Flags().StringVar(&clientID, "client-id", defaultClientID, "Client ID for device or service account authentication")
	loginCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client secret for service account authentication")
}
