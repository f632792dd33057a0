package ports

import (
	"context"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

// TokenVerifier resolves a bearer token to a verified identity by asking the
// external auth service. Implementations must fail with
// domain.ErrUnauthenticated on any failure, including transport errors, and
// must not cache validity: a revoked token has to stop working within one
// verification round-trip.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}
