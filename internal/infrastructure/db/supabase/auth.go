package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tradingdash/journal-api/internal/api/metrics"
	"github.com/tradingdash/journal-api/internal/core/domain"
)

// AuthClient verifies bearer tokens against GoTrue. Validity is never cached:
// every protected request re-verifies, so a revoked token stops working
// within one round-trip.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// Verify asks GoTrue for the user behind token. Every failure mode (non-2xx
// response, unexpected body, transport error, timeout) collapses into
// domain.ErrUnauthenticated: the token is never partially trusted.
func (a *AuthClient) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.client.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build verify request: %v", domain.ErrUnauthenticated, err)
	}
	req.Header.Set("apikey", a.client.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := a.client.http.Do(req)
	metrics.SupabaseRequestDuration.WithLabelValues("auth", "get user").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SupabaseErrorsTotal.WithLabelValues("auth").Inc()
		return nil, fmt.Errorf("%w: verify token: %v", domain.ErrUnauthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.SupabaseErrorsTotal.WithLabelValues("auth").Inc()
		return nil, domain.ErrUnauthenticated
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: decode verify response: %v", domain.ErrUnauthenticated, err)
	}
	if user.ID == "" {
		return nil, domain.ErrUnauthenticated
	}

	return &domain.Identity{
		ID:       user.ID,
		Email:    user.Email,
		Metadata: user.UserMetadata,
	}, nil
}
