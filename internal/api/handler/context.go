package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradingdash/journal-api/internal/api/middleware"
	"github.com/tradingdash/journal-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the guard middleware and
// performs a fast-fail check before any service call: its presence proves the
// guard ran, so a missing identity means a route was wired without one.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	ident, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if ident == nil || ident.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return ident, nil
}
