package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

const tableProfiles = "profiles"

// ProfileRepository implements ports.ProfileRepository on top of PostgREST.
type ProfileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// profileRow is the typed shape of a profiles row. Decoding failure surfaces
// as an error instead of letting untyped data through the call chain.
type profileRow struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (r profileRow) toDomain() domain.Profile {
	p := domain.Profile{
		ID:        r.ID,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	return p
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

// List returns all profiles ordered by created_at descending.
func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")

	var rows []profileRow
	if err := r.client.rest(ctx, http.MethodGet, tableProfiles, query, nil, &rows); err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.toDomain())
	}
	return profiles, nil
}

// FindByID returns the profile whose id equals id.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", eq(id))

	var rows []profileRow
	if err := r.client.rest(ctx, http.MethodGet, tableProfiles, query, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}

	profile := rows[0].toDomain()
	return &profile, nil
}

// UpdateRole sets the role of the given profile. Zero rows affected means the
// user does not exist.
func (r *ProfileRepository) UpdateRole(ctx context.Context, id, role string) (*domain.Profile, error) {
	query := url.Values{}
	query.Set("id", eq(id))

	var rows []profileRow
	if err := r.client.rest(ctx, http.MethodPatch, tableProfiles, query, map[string]string{"role": role}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}

	profile := rows[0].toDomain()
	return &profile, nil
}
