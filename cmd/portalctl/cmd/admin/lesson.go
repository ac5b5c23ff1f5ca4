package admin

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Create, update and list lessons",
}

var lessonIn lessonInput

type lessonInput struct {
	id       string
	courseID string
	title    string
	content  string
	status   string
}

func (in lessonInput) apply(form *sdk.LessonForm, changed func(string) bool) error {
	if changed("id") {
		if err := form.SetID(in.id); err != nil {
			return err
		}
	}
	if changed("course") {
		form.SetCourseID(in.courseID)
	}
	if changed("title") {
		form.SetTitle(in.title)
	}
	if changed("content") {
		form.SetContent(in.content)
	}
	if changed("status") {
		status, err := sdk.ParseContentStatus(in.status)
		if err != nil {
			return err
		}
		form.SetStatus(status)
	}
	return nil
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every lesson with its course",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		rows, err := session.AdminLessonRows(ctx)
		if err != nil {
			return cmdutil.Explain("list lessons", err)
		}
		if len(rows) == 0 {
			fmt.Println("No lessons yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tCOURSE")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Lesson.ID, cmdutil.StatusLabel(r.Lesson.Status), r.Lesson.Title, r.CourseTitle)
		}
		w.Flush()
		return nil
	},
}

var lessonCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := sdk.NewLessonForm("")
		if err := lessonIn.apply(form, cmd.Flags().Changed); err != nil {
			return err
		}
		return submitLesson(cmd, form)
	},
}

var lessonUpdateCmd = &cobra.Command{
	Use:   "update <lesson-id>",
	Short: "Update a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		lesson, err := session.Lesson(ctx, args[0])
		if err != nil {
			return cmdutil.Explain("load lesson", err)
		}

		form := sdk.EditLessonForm(lesson)
		if err := lessonIn.apply(form, cmd.Flags().Changed); err != nil {
			return err
		}
		return submitLesson(cmd, form)
	},
}

func submitLesson(cmd *cobra.Command, form *sdk.LessonForm) error {
	session, err := cmdutil.Session(cmd.Context())
	if err != nil {
		return err
	}
	ctx, cancel := cmdutil.WithTimeout(cmd.Context())
	defer cancel()

	lesson, err := session.SubmitLessonForm(ctx, form)
	if err != nil {
		return cmdutil.Explain("save lesson", err)
	}
	if form.Mode() == sdk.Editing {
		pterm.Success.Printf("Lesson %s updated\n", lesson.ID)
	} else {
		pterm.Success.Printf("Lesson %s created in course %s\n", lesson.ID, lesson.CourseID)
	}
	return nil
}

func init() {
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonCreateCmd)
	lessonCmd.AddCommand(lessonUpdateCmd)

	lessonCreateCmd.Flags().StringVar(&lessonIn.id, "id", "", "Lesson ID (cannot be changed later)")
	for _, c := range []*cobra.Command{lessonCreateCmd, lessonUpdateCmd} {
		c.Flags().StringVar(&lessonIn.courseID, "course", "", "Owning course ID")
		c.Flags().StringVar(&lessonIn.title, "title", "", "Lesson title")
		c.Flags().StringVar(&lessonIn.content, "content", "", "Lesson body")
		c.Flags().StringVar(&lessonIn.status, "status", "", "draft, published or archived")
	}
}
