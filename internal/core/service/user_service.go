package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

// UserService implements the admin-only profile operations.
type UserService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.ProfileRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateRole validates the role value before any database call is made.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.Profile, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	profile, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", profile.ID).Str("role", profile.Role).Msg("role updated")
	return profile, nil
}
