package admin

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var statusIsLesson bool

var statusCmd = &cobra.Command{
	Use:   "status <id> <draft|published|archived>",
	Short: "Change the status of a course, or a lesson with --lesson",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := sdk.ParseContentStatus(args[1])
		if err != nil {
			return err
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		if err := session.SetContentStatus(ctx, args[0], status, !statusIsLesson); err != nil {
			return cmdutil.Explain("change status", err)
		}

		kind := "Course"
		if statusIsLesson {
			kind = "Lesson"
		}
		pterm.Success.Printf("%s %s is now %s\n", kind, args[0], status)
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusIsLesson, "lesson", false, "Treat the id as a lesson id")
}
