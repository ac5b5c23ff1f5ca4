package kb

import (
	"github.com/spf13/cobra"
)

// KBCmd is the parent command for the public knowledge base
var KBCmd = &cobra.Command{
	Use:     "kb",
	Aliases: []string{"knowledge-base"},
	Short:   "Browse published knowledge base articles",
	Long: `The knowledge base is every published lesson across all courses, readable
without signing in.`,
}

func init() {
	KBCmd.AddCommand(listCmd)
	KBCmd.AddCommand(showCmd)
}
