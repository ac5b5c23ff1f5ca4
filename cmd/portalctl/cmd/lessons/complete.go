package lessons

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if gate.RequireIdentity(cmdutil.Authenticated(cmd.Context())) != gate.Granted {
			return errors.New("please log in with `portalctl auth login` to record progress")
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		if err := session.MarkLessonCompleted(ctx, args[0]); err != nil {
			return cmdutil.Explain("mark lesson completed", err)
		}
		pterm.Success.Printf("Lesson %s marked as completed\n", args[0])
		return nil
	},
}
