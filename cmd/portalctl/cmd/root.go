package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/admin"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/auth"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/courses"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/kb"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/lessons"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/profile"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/cmd/progress"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/client"
	"github.com/aaalawyers/trainingportal/cmd/portalctl/internal/config"
)

var (
	serverURL      string
	bearerToken    string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Training portal CLI",
	Long: `portalctl is the command-line interface for the training portal.
Browse courses and lessons, track your progress, and manage content as an admin.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("server") {
			if v := os.Getenv("PORTAL_SERVER"); v != "" {
				serverURL = v
			}
		}
		if bearerToken == "" {
			bearerToken = os.Getenv("PORTAL_TOKEN")
		}
		if os.Getenv("PORTAL_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		provider := client.NewProvider(serverURL)
		if bearerToken != "" {
			provider.SetBearerToken(bearerToken)
		}

		cmd.SetContext(config.InjectConfig(cmd.Context(), &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			ClientProvider: provider,
		}))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cfg, ok := config.FromContext(cmd.Context()); ok {
			_ = cfg.ClientProvider.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// admin and profile gate access in their own PersistentPreRunE
	cobra.EnableTraverseRunHooks = true

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Portal API server URL (env: PORTAL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token to use instead of stored credentials (env: PORTAL_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via PORTAL_NON_INTERACTIVE=1)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(courses.CoursesCmd)
	rootCmd.AddCommand(lessons.LessonsCmd)
	rootCmd.AddCommand(kb.KBCmd)
	rootCmd.AddCommand(progress.ProgressCmd)
	rootCmd.AddCommand(profile.ProfileCmd)
	rootCmd.AddCommand(admin.AdminCmd)
}
