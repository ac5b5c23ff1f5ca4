package courses

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var (
	listAll    bool
	listFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses",
	Long: `Lists published courses. Admins can pass --all to include drafts and
archived courses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		var courses []sdk.Course
		if listAll {
			courses, err = session.Courses(ctx)
		} else {
			courses, err = session.PublishedCourses(ctx)
		}
		if err != nil {
			return cmdutil.Explain("list courses", err)
		}

		courses = sdk.FilterCourses(courses, filter)
		if len(courses) == 0 {
			fmt.Println("No courses available")
			return nil
		}

		writeCourseTable(os.Stdout, courses)
		return nil
	},
}

func writeCourseTable(out io.Writer, courses []sdk.Course) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDESCRIPTION")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Status, c.Title, cmdutil.Truncate(c.Description, 48))
	}
	w.Flush()
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include draft and archived courses")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. title contains \"Ethics\")")
}
