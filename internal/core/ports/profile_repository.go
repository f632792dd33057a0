package ports

import (
	"context"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

// ProfileRepository defines persistence operations on the profiles table.
type ProfileRepository interface {
	// List returns all profiles ordered by created_at descending.
	List(ctx context.Context) ([]domain.Profile, error)
	// FindByID returns the profile whose id equals id, or
	// domain.ErrUserNotFound when no such row exists.
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	// UpdateRole sets the role of the given profile and returns the updated
	// row, or domain.ErrUserNotFound when no row was affected.
	UpdateRole(ctx context.Context, id, role string) (*domain.Profile, error)
}
