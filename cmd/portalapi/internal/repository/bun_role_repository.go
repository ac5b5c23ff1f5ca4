package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

// BunRoleRepository stores role assignments.
type BunRoleRepository struct {
	db bun.IDB
}

func NewBunRoleRepository(db bun.IDB) *BunRoleRepository {
	return &BunRoleRepository{db: db}
}

// Get wraps ErrNotFound when the identity has no explicit assignment.
func (r *BunRoleRepository) Get(ctx context.Context, identity string) (*models.RoleAssignment, error) {
	assignment := new(models.RoleAssignment)
	if err := r.db.NewSelect().Model(assignment).Where("identity = ?", identity).Scan(ctx); err != nil {
		return nil, notFound(err, "role assignment", identity)
	}
	return assignment, nil
}

// Assign creates or replaces the identity's role.
func (r *BunRoleRepository) Assign(ctx context.Context, assignment *models.RoleAssignment) error {
	if assignment.Identity == "" || assignment.Role == "" {
		return fmt.Errorf("validation failed: identity and role are required")
	}

	assignment.AssignedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(assignment).
		On("CONFLICT (identity) DO UPDATE").
		Set("role = EXCLUDED.role").
		Set("assigned_by = EXCLUDED.assigned_by").
		Set("assigned_at = EXCLUDED.assigned_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

func (r *BunRoleRepository) List(ctx context.Context) ([]models.RoleAssignment, error) {
	var assignments []models.RoleAssignment
	if err := r.db.NewSelect().Model(&assignments).Order("identity ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list role assignments: %w", err)
	}
	return assignments, nil
}
