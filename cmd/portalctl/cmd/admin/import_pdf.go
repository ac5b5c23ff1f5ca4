package admin

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/cmdutil"
)

var importPDFCmd = &cobra.Command{
	Use:   "import-pdf <file>",
	Short: "Import a PDF as a new draft course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if len(data) == 0 {
			return errors.New("file is empty")
		}

		session, err := cmdutil.Session(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := cmdutil.WithTimeout(cmd.Context())
		defer cancel()

		id, err := session.ImportPDF(ctx, data)
		if err != nil {
			return cmdutil.Explain("import PDF", err)
		}
		pterm.Success.Printf("Imported %s as draft course %s\n", args[0], id)
		pterm.Info.Printf("Publish it with `portalctl admin status %s published`.\n", id)
		return nil
	},
}
