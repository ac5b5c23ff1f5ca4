package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

// BunProfileRepository stores one profile per identity.
type BunProfileRepository struct {
	db bun.IDB
}

func NewBunProfileRepository(db bun.IDB) *BunProfileRepository {
	return &BunProfileRepository{db: db}
}

// Get wraps ErrNotFound when the identity never saved a profile.
func (r *BunProfileRepository) Get(ctx context.Context, identity string) (*models.Profile, error) {
	profile := new(models.Profile)
	if err := r.db.NewSelect().Model(profile).Where("identity = ?", identity).Scan(ctx); err != nil {
		return nil, notFound(err, "profile", identity)
	}
	return profile, nil
}

// Upsert replaces the identity's profile.
func (r *BunProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	if profile.Identity == "" {
		return fmt.Errorf("validation failed: profile identity is required")
	}

	profile.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(profile).
		On("CONFLICT (identity) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("email = EXCLUDED.email").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
