package ports

import (
	"context"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

// UserService defines the admin-only operations over user profiles.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.Profile, error)
	GetUser(ctx context.Context, id string) (*domain.Profile, error)
	// UpdateRole rejects any role outside {"user", "admin"} with
	// domain.ErrInvalidRole before touching the database.
	UpdateRole(ctx context.Context, id, role string) (*domain.Profile, error)
}
