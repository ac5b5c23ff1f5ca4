package profile

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var (
	profileName  string
	profileEmail string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("email") {
			return errors.New("nothing to update: pass --name and/or --email")
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		var profile sdk.UserProfile
		current, err := session.CallerProfile(ctx)
		if err != nil {
			return cmdutil.Explain("get profile", err)
		}
		if current != nil {
			profile = *current
		}
		if cmd.Flags().Changed("name") {
			profile.Name = profileName
		}
		if cmd.Flags().Changed("email") {
			profile.Email = profileEmail
		}

		if err := session.SaveCallerProfile(ctx, profile); err != nil {
			return cmdutil.Explain("save profile", err)
		}
		pterm.Success.Println("Profile saved")
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	setCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
}
