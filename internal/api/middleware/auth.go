package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradingdash/journal-api/internal/api/metrics"
	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

// IdentityKey is the echo context key under which the guards store the
// verified identity.
const IdentityKey = "identity"

// RequireUser authenticates the request through the access gate and injects
// the verified identity into the context. Guard failures short-circuit before
// any handler logic runs.
func RequireUser(gate ports.AccessGate) echo.MiddlewareFunc {
	return guardMiddleware("user", gate.RequireUser)
}

// RequireAdmin authenticates the request and additionally requires the admin
// role. A request with a bad token is rejected before any role lookup.
func RequireAdmin(gate ports.AccessGate) echo.MiddlewareFunc {
	return guardMiddleware("admin", gate.RequireAdmin)
}

type guardFunc = func(ctx context.Context, token string) (*domain.Identity, error)

func guardMiddleware(name string, check guardFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				metrics.AuthChecksTotal.WithLabelValues(name, "unauthenticated").Inc()
				return err
			}

			ident, err := check(c.Request().Context(), token)
			if err != nil {
				metrics.AuthChecksTotal.WithLabelValues(name, resultLabel(err)).Inc()
				return err
			}

			metrics.AuthChecksTotal.WithLabelValues(name, "granted").Inc()
			c.Set(IdentityKey, ident)
			return next(c)
		}
	}
}

// bearerToken extracts the credential from the Authorization header. A
// missing or malformed header is itself an authentication failure.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domain.ErrUnauthenticated
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrUnauthenticated
	}
	return parts[1], nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
