package kb

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
)

var showCmd = &cobra.Command{
	Use:   "show <article-id>",
	Short: "Show a knowledge base article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		article, err := session.Article(ctx, args[0])
		if err != nil {
			return cmdutil.Explain("load article", err)
		}

		pterm.DefaultSection.Println(article.Lesson.Title)
		pterm.Info.Printf("Course: %s\n", article.CourseTitle)
		fmt.Println(article.Lesson.Content)
		return nil
	},
}
