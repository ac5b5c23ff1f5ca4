package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/cmd/cmdutil"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
	portalmiddleware "github.com/aaalawyers/trainingportal/cmd/portalapi/internal/middleware"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/server"
)

var serveNoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portal API server",
	Long: `Starts the HTTP server with the portal Connect RPC endpoints. Pending
migrations are applied first unless --no-migrate is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := cmdutil.NewPortalBundle(cmd.Context(), cfg, cmdutil.BundleOptions{
			Migrate:    !serveNoMigrate,
			WithIssuer: true,
		})
		if err != nil {
			return err
		}
		defer bundle.Close()

		log.Printf("Connected to database")

		if cfg.BootstrapAdmin != "" {
			if err := bundle.Service.AssignRole(cmd.Context(), cfg.BootstrapAdmin, auth.RoleAdmin, ""); err != nil {
				return fmt.Errorf("bootstrap admin %s: %w", cfg.BootstrapAdmin, err)
			}
			log.Printf("Bootstrap admin: %s", cfg.BootstrapAdmin)
		}

		connectInterceptors := []connect.Interceptor{
			portalmiddleware.NewAuthnInterceptor(bundle.Issuer),
			portalmiddleware.NewAuthzInterceptor(portalmiddleware.AuthzDependencies{
				Enforcer: bundle.Enforcer,
				Roles:    bundle.Service,
			}),
		}

		corsOpts := server.DefaultCORSOptions()
		if len(cfg.AllowedOrigins) > 0 {
			corsOpts.AllowedOrigins = cfg.AllowedOrigins
		}

		handler := server.NewH2CHandler(server.RouterOptions{
			Service:             bundle.Service,
			Enforcer:            bundle.Enforcer,
			CORSOptions:         &corsOpts,
			ConnectInterceptors: connectInterceptors,
		})

		srv := &http.Server{
			Addr:         cfg.ServerAddr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			log.Printf("Starting server on %s", cfg.ServerAddr)
			log.Printf("Server URL: %s", cfg.ServerURL)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// SIGHUP drops cached roles after out-of-band assignments
		purge := make(chan os.Signal, 1)
		signal.Notify(purge, syscall.SIGHUP)

		for {
			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)

			case sig := <-purge:
				bundle.Service.PurgeRoleCache()
				log.Printf("Received signal %v, role cache purged", sig)

			case sig := <-shutdown:
				log.Printf("Received signal %v, shutting down gracefully", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					srv.Close()
					return fmt.Errorf("graceful shutdown failed: %w", err)
				}

				log.Printf("Server stopped")
				return nil
			}
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoMigrate, "no-migrate", false, "Skip applying pending migrations at startup")
}

