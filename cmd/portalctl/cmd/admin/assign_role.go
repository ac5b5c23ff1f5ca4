package admin

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var assignRoleCmd = &cobra.Command{
	Use:   "assign-role <identity> <admin|user|guest>",
	Short: "Assign a role to an identity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := sdk.ParseUserRole(args[1])
		if err != nil {
			return err
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		if err := session.AssignCallerUserRole(ctx, args[0], role); err != nil {
			return cmdutil.Explain("assign role", err)
		}
		pterm.Success.Printf("Assigned role %s to %s\n", role, args[0])
		return nil
	},
}
