package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

// ProgressCmd shows the caller's enrollments and completion per course.
var ProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your enrolled courses and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if gate.RequireIdentity(cmdutil.Authenticated(cmd.Context())) != gate.Granted {
			return errors.New("please log in with `portalctl auth login` to view progress")
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
		if len(progress.EnrolledCourses) == 0 {
			fmt.Println("Not enrolled in any course")
			return nil
		}

		courses, err := session.Courses(ctx)
		if err != nil {
			return cmdutil.Explain("list courses", err)
		}

		rows := make([]progressRow, len(progress.EnrolledCourses))
		g, gctx := errgroup.WithContext(ctx)
		for i, courseID := range progress.EnrolledCourses {
			g.Go(func() error {
				lessons, err := session.LessonsByCourse(gctx, courseID)
				if err != nil {
					return err
				}
				rows[i] = progressRow{
					CourseID: courseID,
					Title:    sdk.CourseTitle(courses, courseID),
					Progress: sdk.ComputeCourseProgress(lessons, progress),
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return cmdutil.Explain("load lessons", err)
		}

		writeProgressTable(os.Stdout, rows)
		return nil
	},
}

type progressRow struct {
	CourseID string
	Title    string
	Progress sdk.CourseProgress
}

func writeProgressTable(out io.Writer, rows []progressRow) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COURSE\tTITLE\tCOMPLETED\tPROGRESS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d%%\n", r.CourseID, r.Title, r.Progress.Completed, r.Progress.Total, r.Progress.Percent)
	}
	w.Flush()
}
