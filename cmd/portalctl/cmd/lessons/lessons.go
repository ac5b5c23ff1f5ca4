package lessons

import (
	"github.com/spf13/cobra"
)

// LessonsCmd is the parent command for reading lessons
var LessonsCmd = &cobra.Command{
	Use:     "lessons",
	Aliases: []string{"lesson"},
	Short:   "Read lessons and record completion",
}

func init() {
	LessonsCmd.AddCommand(listCmd)
	LessonsCmd.AddCommand(showCmd)
	LessonsCmd.AddCommand(completeCmd)
}
