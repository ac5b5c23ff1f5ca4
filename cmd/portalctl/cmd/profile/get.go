package profile

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
)

var getCmd = &cobra.Command{
	Use:   "get [identity]",
	Short: "Show your profile, or another user's with an identity argument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		if len(args) == 1 {
			profile, err := session.UserProfile(ctx, args[0])
			if err != nil {
				return cmdutil.Explain("get profile", err)
			}
			if profile == nil {
				fmt.Printf("No profile saved for %s\n", args[0])
				return nil
			}
			pterm.Info.Printf("Name:  %s\nEmail: %s\n", profile.Name, profile.Email)
			return nil
		}

		profile, err := session.CallerProfile(ctx)
		if err != nil {
			return cmdutil.Explain("get profile", err)
		}
		if profile == nil {
			fmt.Println("No profile saved yet. Use `portalctl profile set --name ... --email ...`.")
			return nil
		}
		pterm.Info.Printf("Name:  %s\nEmail: %s\n", profile.Name, profile.Email)
		return nil
	},
}
