package lessons

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var (
	listCourseID string
	listAll      bool
	listFilter   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons of a course",
	Long: `Lists the published lessons of --course. With --all every lesson of the
course is listed regardless of status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listCourseID == "" {
			return errors.New("--course is required")
		}
		filter, err := sdk.ParseFilter(listFilter)
		if err != nil {
			return err
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		var lessons []sdk.Lesson
		if listAll {
			lessons, err = session.LessonsByCourse(ctx, listCourseID)
		} else {
			lessons, err = session.PublishedLessons(ctx, listCourseID)
		}
		if err != nil {
			return cmdutil.Explain("list lessons", err)
		}

		lessons = sdk.FilterLessons(lessons, filter)
		if len(lessons) == 0 {
			fmt.Println("No lessons available")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
		for _, l := range lessons {
			fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Status, l.Title)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCourseID, "course", "", "Course ID (required)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include draft and archived lessons")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. title contains \"Intro\")")
}
