package courses

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if gate.RequireIdentity(cmdutil.Authenticated(cmd.Context())) != gate.Granted {
			return errors.New("please log in with `portalctl auth login` to enroll")
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		progress, err := session.TraineeProgress(ctx)
		if err != nil {
			return cmdutil.Explain("load progress", err)
		}
		if sdk.EnrollmentState(progress, args[0]) == sdk.Enrolled {
			pterm.Info.Printf("Already enrolled in %s\n", args[0])
			return nil
		}

		if err := session.EnrollInCourse(ctx, args[0]); err != nil {
			return cmdutil.Explain("enroll in course", err)
		}
		pterm.Success.Printf("Enrolled in %s\n", args[0])
		return nil
	},
}
