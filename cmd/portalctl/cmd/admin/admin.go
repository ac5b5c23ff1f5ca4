package admin

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

// errNotAdmin is returned when the admin gate denies the caller.
var errNotAdmin = errors.New("admin role required")

// AdminCmd is the parent command for content management. Every subcommand
// runs behind the admin gate.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage courses, lessons and roles (admin only)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		var spinner *pterm.SpinnerPrinter
		var denial gate.Denial
		state := session.AdminGate(gate.WithFallback("portalctl courses list")).Render(ctx, gate.View{
			Pending: func() {
				spinner, _ = pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Checking access...")
			},
			Denied: func(d gate.Denial) {
				denial = d
			},
		})
		if spinner != nil {
			_ = spinner.Stop()
		}
		return gateError(state, denial)
	},
}

// gateError maps a rendered gate state to the command's outcome.
func gateError(state gate.State, d gate.Denial) error {
	switch state {
	case gate.Granted:
		return nil
	case gate.Denied:
		if d.Err != nil {
			return cmdutil.Explain("check admin access", d.Err)
		}
		pterm.Info.Printf("Try `%s` instead.\n", d.Fallback)
		return errNotAdmin
	default:
		return errors.New("timed out checking admin access")
	}
}

func init() {
	AdminCmd.AddCommand(courseCmd)
	AdminCmd.AddCommand(lessonCmd)
	AdminCmd.AddCommand(statusCmd)
	AdminCmd.AddCommand(importPDFCmd)
	AdminCmd.AddCommand(assignRoleCmd)
}
