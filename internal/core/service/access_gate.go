package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

// AccessGate composes the token verifier and the profile store into the two
// guard contracts every protected route uses.
type AccessGate struct {
	verifier ports.TokenVerifier
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewAccessGate(verifier ports.TokenVerifier, profiles ports.ProfileRepository, logger zerolog.Logger) *AccessGate {
	return &AccessGate{verifier: verifier, profiles: profiles, logger: logger}
}

// RequireUser verifies the bearer token and returns the identity behind it.
// The verifier's error is propagated unchanged.
func (g *AccessGate) RequireUser(ctx context.Context, token string) (*domain.Identity, error) {
	return g.verifier.Verify(ctx, token)
}

// RequireAdmin verifies the token first, then resolves the caller's role from
// the profiles table. A bad token never reaches the role lookup. A valid
// identity with no profile row, or with a role other than "admin", gets
// domain.ErrForbidden; a failed lookup surfaces as a distinct internal error
// so callers can tell "not allowed" from "could not check".
func (g *AccessGate) RequireAdmin(ctx context.Context, token string) (*domain.Identity, error) {
	ident, err := g.RequireUser(ctx, token)
	if err != nil {
		return nil, err
	}

	profile, err := g.profiles.FindByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrForbidden
		}
		g.logger.Error().Err(err).Str("user_id", ident.ID).Msg("role lookup failed")
		return nil, fmt.Errorf("resolve role for %s: %w", ident.ID, err)
	}

	if profile.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return ident, nil
}
