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

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Create, update and list courses",
}

var courseIn courseInput

type courseInput struct {
	id          string
	title       string
	description string
	status      string
}

// apply copies every flag the user set onto form.
func (in courseInput) apply(form *sdk.CourseForm, changed func(string) bool) error {
	if changed("id") {
		if err := form.SetID(in.id); err != nil {
			return err
		}
	}
	if changed("title") {
		form.SetTitle(in.title)
	}
	if changed("description") {
		form.SetDescription(in.description)
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

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every course regardless of status",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		courses, err := session.Courses(ctx)
		if err != nil {
			return cmdutil.Explain("list courses", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
		for _, c := range courses {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, cmdutil.StatusLabel(c.Status), c.Title)
		}
		w.Flush()
		return nil
	},
}

var courseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := sdk.NewCourseForm()
		if err := courseIn.apply(form, cmd.Flags().Changed); err != nil {
			return err
		}
		return submitCourse(cmd, form)
	},
}

var courseUpdateCmd = &cobra.Command{
	Use:   "update <course-id>",
	Short: "Update a course's title, description or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		course, err := session.Course(ctx, args[0])
		if err != nil {
			return cmdutil.Explain("load course", err)
		}

		form := sdk.EditCourseForm(course)
		if err := courseIn.apply(form, cmd.Flags().Changed); err != nil {
			return err
		}
		return submitCourse(cmd, form)
	},
}

func submitCourse(cmd *cobra.Command, form *sdk.CourseForm) error {
	session, err := cmdutil.Session(cmd.Context())
	if err != nil {
		return err
	}
	ctx, cancel := cmdutil.WithTimeout(cmd.Context())
	defer cancel()

	course, err := session.SubmitCourseForm(ctx, form)
	if err != nil {
		return cmdutil.Explain("save course", err)
	}
	if form.Mode() == sdk.Editing {
		pterm.Success.Printf("Course %s updated\n", course.ID)
	} else {
		pterm.Success.Printf("Course %s created\n", course.ID)
	}
	return nil
}

func init() {
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseCreateCmd)
	courseCmd.AddCommand(courseUpdateCmd)

	courseCreateCmd.Flags().StringVar(&courseIn.id, "id", "", "Course ID (cannot be changed later)")
	for _, c := range []*cobra.Command{courseCreateCmd, courseUpdateCmd} {
		c.Flags().StringVar(&courseIn.title, "title", "", "Course title")
		c.Flags().StringVar(&courseIn.description, "description", "", "Course description")
		c.Flags().StringVar(&courseIn.status, "status", "", "draft, published or archived")
	}
}
