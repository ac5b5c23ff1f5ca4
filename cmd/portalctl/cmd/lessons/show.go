package lessons

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
)

var showCmd = &cobra.Command{
	Use:   "show <course-id> <lesson-id>",
	Short: "Show a lesson",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		courseID, lessonID := args[0], args[1]
		detail, err := session.LessonView(ctx, courseID, lessonID, cmdutil.Authenticated(cmd.Context()))
		if err != nil {
			return cmdutil.Explain("load lesson", err)
		}

		pterm.Info.Printf("Course: %s\n", detail.CourseTitle)
		pterm.DefaultSection.Println(detail.Lesson.Title)
		fmt.Println(detail.Lesson.Content)
		if len(detail.Lesson.PDFSource) > 0 {
			pterm.Info.Printf("Attached PDF: %d bytes\n", len(detail.Lesson.PDFSource))
		}

		fmt.Println()
		switch {
		case detail.Completed:
			pterm.Success.Println("Completed")
		case detail.CanComplete:
			pterm.Info.Printf("Run `portalctl lessons complete %s` when done.\n", lessonID)
		}
		if detail.Next != nil {
			pterm.Info.Printf("Next lesson: %s (portalctl lessons show %s %s)\n", detail.Next.Title, courseID, detail.Next.ID)
		}
		return nil
	},
}
