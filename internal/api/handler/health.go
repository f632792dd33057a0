package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const serviceName = "trading-dashboard-api"

// HealthHandler serves the unauthenticated root and health endpoints.
type HealthHandler struct {
	supabaseConfigured bool
}

func NewHealthHandler(supabaseConfigured bool) *HealthHandler {
	return &HealthHandler{supabaseConfigured: supabaseConfigured}
}

type rootResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status             string `json:"status"`
	Service            string `json:"service"`
	SupabaseConfigured bool   `json:"supabase_configured"`
}

// Root handles GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{Message: "Trading Dashboard API is running"})
}

// Health handles GET /health: liveness plus whether Supabase credentials
// were present at startup. No outbound call is made here; the process either
// booted with credentials or refused to start.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:             "healthy",
		Service:            serviceName,
		SupabaseConfigured: h.supabaseConfigured,
	})
}
