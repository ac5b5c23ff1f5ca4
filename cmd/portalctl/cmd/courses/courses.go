package courses

import (
	"github.com/spf13/cobra"
)

// CoursesCmd is the parent command for browsing courses
var CoursesCmd = &cobra.Command{
	Use:     "courses",
	Aliases: []string{"course"},
	Short:   "Browse courses",
	Long:    `Commands for listing courses, viewing a course and enrolling in it.`,
}

func init() {
	CoursesCmd.AddCommand(listCmd)
	CoursesCmd.AddCommand(showCmd)
	CoursesCmd.AddCommand(enrollCmd)
}
