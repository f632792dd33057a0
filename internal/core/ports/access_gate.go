package ports

import (
	"context"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

// AccessGate is the only gate through which protected handlers may reach the
// database. RequireUser verifies the token; RequireAdmin additionally
// resolves the caller's role. Authentication failure is always reported
// before any role check is attempted.
type AccessGate interface {
	RequireUser(ctx context.Context, token string) (*domain.Identity, error)
	RequireAdmin(ctx context.Context, token string) (*domain.Identity, error)
}
