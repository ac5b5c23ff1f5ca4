package profile

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

// ProfileCmd is the parent command for the caller's profile
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if gate.RequireIdentity(cmdutil.Authenticated(cmd.Context())) != gate.Granted {
			return errors.New("please log in with `portalctl auth login` to manage your profile")
		}
		return nil
	},
}

func init() {
	ProfileCmd.AddCommand(getCmd)
	ProfileCmd.AddCommand(setCmd)
}
