package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
)

var (
	tokenIdentity string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Development token commands",
}

var tokenMintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a bearer token for an identity",
	Long: `Mints an HS256 bearer token signed with PORTAL_TOKEN_SECRET. Pass it to
portalctl with --token or PORTAL_TOKEN.`,
	Example: `  portalapi token mint --identity user:alice
  portalctl --token "$(portalapi token mint --identity user:alice --quiet)" progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := auth.NewTokenIssuer(cfg.Token.Secret, cfg.Token.Issuer)
		if err != nil {
			return fmt.Errorf("configure token issuer (set PORTAL_TOKEN_SECRET): %w", err)
		}

		ttl := tokenTTL
		if ttl <= 0 {
			ttl = cfg.Token.TTL
		}
		token, expiresAt, err := issuer.Mint(tokenIdentity, ttl)
		if err != nil {
			return err
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet {
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		}
		pterm.Success.Printf("Token for %s (expires %s)\n", tokenIdentity, expiresAt.Format(time.RFC3339))
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenMintCmd.Flags().StringVar(&tokenIdentity, "identity", "", "Identity to mint for, e.g. user:alice or sa:ci")
	tokenMintCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (defaults to PORTAL_TOKEN_TTL)")
	tokenMintCmd.Flags().BoolP("quiet", "q", false, "Print only the token")
	_ = tokenMintCmd.MarkFlagRequired("identity")
	tokenCmd.AddCommand(tokenMintCmd)
}
