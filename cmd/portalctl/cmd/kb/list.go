package kb

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/query"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge base articles",
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

		articles, err := session.PublishedArticles(ctx)
		if err != nil {
			return cmdutil.Explain("list articles", err)
		}

		articles = filterArticles(articles, filter)
		if len(articles) == 0 {
			fmt.Println("No articles yet. Knowledge base articles appear here once published.")
			return nil
		}

		writeArticleTable(os.Stdout, articles)
		return nil
	},
}

func filterArticles(articles []query.Article, f *sdk.Filter) []query.Article {
	out := make([]query.Article, 0, len(articles))
	for _, a := range articles {
		if f.MatchLesson(a.Lesson) {
			out = append(out, a)
		}
	}
	return out
}

func writeArticleTable(out io.Writer, articles []query.Article) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOURSE\tTITLE\tEXCERPT")
	for _, a := range articles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Lesson.ID, a.CourseTitle, a.Lesson.Title, cmdutil.Truncate(a.Lesson.Content, 60))
	}
	w.Flush()
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. title contains \"Accident\")")
}
