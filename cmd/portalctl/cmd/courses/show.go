package courses

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk/query"
)

var showCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course with its lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		detail, err := session.CourseDetail(ctx, args[0], cmdutil.Authenticated(cmd.Context()))
		if err != nil {
			return cmdutil.Explain("load course", err)
		}

		printCourseDetail(detail)
		return nil
	},
}

func printCourseDetail(detail *query.CourseDetail) {
	pterm.DefaultSection.Println(detail.Course.Title)
	if detail.Course.Description != "" {
		fmt.Println(detail.Course.Description)
	}

	if panel := detail.Panel; panel != nil {
		pterm.DefaultSection.WithLevel(2).Println("Your Progress")
		if panel.CanEnroll() {
			pterm.Info.Printf("Not enrolled. Run `portalctl courses enroll %s` to start.\n", detail.Course.ID)
		} else {
			pterm.Info.Printf("%d of %d lessons completed (%d%%)\n",
				panel.Progress.Completed, panel.Progress.Total, panel.Progress.Percent)
		}
	}

	pterm.DefaultSection.WithLevel(2).Println("Lessons")
	if len(detail.Lessons) == 0 {
		fmt.Println("No lessons available")
		return
	}
	for i, l := range detail.Lessons {
		mark := " "
		if detail.Panel != nil && detail.Panel.Completed[l.ID] {
			mark = "✓"
		}
		fmt.Printf("%s %2d. %s (%s)\n", mark, i+1, l.Title, l.ID)
	}
}
