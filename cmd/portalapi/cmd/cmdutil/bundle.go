package cmdutil

import (
	"context"
	"fmt"
	"log"

	"github.com/casbin/casbin/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/config"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/bunx"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/migrations"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/services/catalog"
)

// BundleOptions controls how commands construct the portal services.
type BundleOptions struct {
	// Migrate applies pending migrations before the service is built.
	Migrate bool
	// WithIssuer builds the token issuer; it requires PORTAL_TOKEN_SECRET.
	WithIssuer bool
}

// PortalBundle bundles the catalog service with its DB connection and the
// auth components built from the same configuration.
type PortalBundle struct {
	DB       *bun.DB
	Service  *catalog.Service
	Enforcer casbin.IEnforcer
	Issuer   *auth.TokenIssuer
}

// Close releases the underlying database connection.
func (b *PortalBundle) Close() {
	if b == nil || b.DB == nil {
		return
	}
	bunx.Close(b.DB)
}

// NewPortalBundle centralizes service construction for CLI commands.
func NewPortalBundle(ctx context.Context, cfg *config.Config, opts BundleOptions) (*PortalBundle, error) {
	db, err := bunx.NewDB(cfg.DatabaseURL, cfg.MaxDBConnections)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	bundle := &PortalBundle{DB: db}

	if opts.Migrate {
		if err := Migrate(ctx, db); err != nil {
			bundle.Close()
			return nil, err
		}
	}

	bundle.Service, err = catalog.NewService(db, cfg.RoleCacheSize)
	if err != nil {
		bundle.Close()
		return nil, err
	}

	bundle.Enforcer, err = auth.InitEnforcer()
	if err != nil {
		bundle.Close()
		return nil, fmt.Errorf("failed to initialize casbin enforcer: %w", err)
	}

	if opts.WithIssuer {
		bundle.Issuer, err = auth.NewTokenIssuer(cfg.Token.Secret, cfg.Token.Issuer)
		if err != nil {
			bundle.Close()
			return nil, fmt.Errorf("configure token issuer (set PORTAL_TOKEN_SECRET): %w", err)
		}
	}

	return bundle, nil
}

// Migrate initializes the migration tables and applies pending migrations
// under the migrator lock.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			log.Printf("Warning: failed to release migration lock: %v", err)
		}
	}()

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if group.ID == 0 {
		log.Printf("No new migrations to apply")
	} else {
		log.Printf("Applied migration group %d", group.ID)
	}
	return nil
}
