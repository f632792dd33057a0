package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradingdash/journal-api/internal/api/metrics"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

// JournalHandler handles HTTP requests for trade journal operations. All
// routes sit behind the requireUser guard.
type JournalHandler struct {
	service ports.JournalService
}

func NewJournalHandler(service ports.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// List handles GET /api/journals/.
//
// @Summary      List journal entries
// @Description  Returns the given user's entries when user_id is set (any authenticated caller may read any user's list), else the caller's own.
// @Tags         journals
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Target user id"
// @Success      200      {array}   domain.JournalEntry
// @Failure      401      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /api/journals/ [get]
func (h *JournalHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), ident.ID, c.QueryParam("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/journals/.
//
// @Summary      Create a journal entry
// @Tags         journals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJournalRequest  true  "Journal entry"
// @Success      201   {object}  domain.JournalEntry
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/journals/ [post]
func (h *JournalHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJournalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), *ident, ports.CreateJournalInput{
		Symbol:     req.Symbol,
		Direction:  req.Direction,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
		TradeSize:  req.TradeSize,
		TradeDate:  req.TradeDate,
		Outcome:    req.Outcome,
		Status:     req.Status,
		Notes:      req.Notes,
		Images:     req.Images,
	})
	if err != nil {
		return err
	}

	metrics.JournalsCreatedTotal.WithLabelValues(created.Direction).Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/journals/:id.
//
// @Summary      Update a journal entry
// @Description  Partial update: absent fields are left untouched. An entry owned by someone else is reported as 404.
// @Tags         journals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Journal id"
// @Param        body  body      updateJournalRequest  true  "Fields to change"
// @Success      200   {object}  domain.JournalEntry
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/journals/{id} [put]
func (h *JournalHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateJournalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ident.ID, c.Param("id"), ports.UpdateJournalInput{
		Symbol:     req.Symbol,
		Direction:  req.Direction,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
		TradeSize:  req.TradeSize,
		TradeDate:  req.TradeDate,
		Outcome:    req.Outcome,
		Status:     req.Status,
		Notes:      req.Notes,
		Images:     req.Images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/journals/:id.
//
// @Summary      Delete a journal entry
// @Tags         journals
// @Security     BearerAuth
// @Param        id  path  string  true  "Journal id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/journals/{id} [delete]
func (h *JournalHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
