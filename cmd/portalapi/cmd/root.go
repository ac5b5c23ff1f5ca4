package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/config"
)

var (
	cfg        *config.Config
	configFile string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "portalapi",
	Short: "Training portal development API server",
	Long: `portalapi serves the training portal RPC contract over Connect for local
development and end-to-end tests of the portal clients.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a dotenv file loaded before configuration")
	rootCmd.PersistentFlags().String("db-url", "", "Database connection URL (env: PORTAL_DATABASE_URL)")
	rootCmd.PersistentFlags().String("server-addr", "", "Server bind address (env: PORTAL_SERVER_ADDR)")
	rootCmd.PersistentFlags().String("server-url", "", "Public server URL (env: PORTAL_SERVER_URL)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (env: PORTAL_DEBUG)")

	mustBind("database_url", "db-url")
	mustBind("server_addr", "server-addr")
	mustBind("server_url", "server-url")
	mustBind("debug", "debug")

	rootCmd.AddCommand(serveCmd, dbCmd, tokenCmd, roleCmd)
}

func mustBind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
