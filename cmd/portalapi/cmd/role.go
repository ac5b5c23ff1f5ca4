package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/cmd/cmdutil"
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Role assignment commands",
}

var roleAssignCmd = &cobra.Command{
	Use:   "assign <identity> <role>",
	Short: "Assign a role directly in the database",
	Long: `Assigns admin, user or guest to an identity without going through the API.
Use it to bootstrap the first admin. A running server picks the change up
after SIGHUP or on its next restart.`,
	Example: "  portalapi role assign user:alice admin",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := cmdutil.NewPortalBundle(cmd.Context(), cfg, cmdutil.BundleOptions{Migrate: true})
		if err != nil {
			return err
		}
		defer bundle.Close()

		identity, role := args[0], args[1]
		if err := bundle.Service.AssignRole(cmd.Context(), identity, role, ""); err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		pterm.Success.Printf("Assigned role %s to %s\n", role, identity)
		return nil
	},
}

var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List explicit role assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := cmdutil.NewPortalBundle(cmd.Context(), cfg, cmdutil.BundleOptions{})
		if err != nil {
			return err
		}
		defer bundle.Close()

		assignments, err := bundle.Service.ListRoleAssignments(cmd.Context())
		if err != nil {
			return fmt.Errorf("list role assignments: %w", err)
		}
		if len(assignments) == 0 {
			pterm.Info.Println("No role assignments; every signed-in identity is a user")
			return nil
		}

		data := pterm.TableData{{"IDENTITY", "ROLE", "ASSIGNED BY", "ASSIGNED AT"}}
		for _, a := range assignments {
			by := a.AssignedBy
			if by == "" {
				by = "-"
			}
			data = append(data, []string{a.Identity, a.Role, by, a.AssignedAt.Format("2006-01-02 15:04")})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	roleCmd.AddCommand(roleAssignCmd, roleListCmd)
}
