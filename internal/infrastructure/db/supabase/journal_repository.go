package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

const tableJournals = "trade_journals"

// JournalRepository implements ports.JournalRepository on top of PostgREST.
// Update and Delete always carry both the id and user_id filters, so a row
// owned by someone else comes back as zero affected rows.
type JournalRepository struct {
	client *Client
}

func NewJournalRepository(client *Client) *JournalRepository {
	return &JournalRepository{client: client}
}

// journalRow is the typed shape of a trade_journals row.
type journalRow struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Symbol     string     `json:"symbol"`
	Direction  string     `json:"direction"`
	EntryPrice *float64   `json:"entry_price"`
	ExitPrice  *float64   `json:"exit_price"`
	StopLoss   *float64   `json:"stop_loss"`
	TakeProfit *float64   `json:"take_profit"`
	TradeSize  *float64   `json:"trade_size"`
	TradeDate  *time.Time `json:"trade_date"`
	Outcome    *string    `json:"outcome"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes"`
	Images     []string   `json:"images"`
	CreatedAt  *time.Time `json:"created_at"`
}

func (r journalRow) toDomain() domain.JournalEntry {
	entry := domain.JournalEntry{
		ID:         r.ID,
		UserID:     r.UserID,
		Symbol:     r.Symbol,
		Direction:  r.Direction,
		EntryPrice: r.EntryPrice,
		ExitPrice:  r.ExitPrice,
		StopLoss:   r.StopLoss,
		TakeProfit: r.TakeProfit,
		TradeSize:  r.TradeSize,
		Status:     r.Status,
		Images:     r.Images,
	}
	if r.TradeDate != nil {
		entry.TradeDate = *r.TradeDate
	}
	if r.Outcome != nil {
		entry.Outcome = *r.Outcome
	}
	if r.Notes != nil {
		entry.Notes = *r.Notes
	}
	if r.CreatedAt != nil {
		entry.CreatedAt = *r.CreatedAt
	}
	return entry
}

var _ ports.JournalRepository = (*JournalRepository)(nil)

// ListByUser returns all of userID's entries ordered by trade_date descending.
func (r *JournalRepository) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", eq(userID))
	query.Set("order", "trade_date.desc")

	var rows []journalRow
	if err := r.client.rest(ctx, http.MethodGet, tableJournals, query, nil, &rows); err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}

// Insert stores a new entry and returns the row the database created.
func (r *JournalRepository) Insert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	body := map[string]any{
		"user_id":    entry.UserID,
		"symbol":     entry.Symbol,
		"direction":  entry.Direction,
		"trade_date": entry.TradeDate,
		"status":     entry.Status,
	}
	if entry.EntryPrice != nil {
		body["entry_price"] = *entry.EntryPrice
	}
	if entry.ExitPrice != nil {
		body["exit_price"] = *entry.ExitPrice
	}
	if entry.StopLoss != nil {
		body["stop_loss"] = *entry.StopLoss
	}
	if entry.TakeProfit != nil {
		body["take_profit"] = *entry.TakeProfit
	}
	if entry.TradeSize != nil {
		body["trade_size"] = *entry.TradeSize
	}
	if entry.Outcome != "" {
		body["outcome"] = entry.Outcome
	}
	if entry.Notes != "" {
		body["notes"] = entry.Notes
	}
	if entry.Images != nil {
		body["images"] = entry.Images
	}

	var rows []journalRow
	if err := r.client.rest(ctx, http.MethodPost, tableJournals, nil, body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &apiError{Status: http.StatusInternalServerError, Body: "insert returned no rows"}
	}

	created := rows[0].toDomain()
	return &created, nil
}

// Update applies patch to the row matching id and userID.
func (r *JournalRepository) Update(ctx context.Context, id, userID string, patch ports.JournalPatch) (*domain.JournalEntry, error) {
	query := url.Values{}
	query.Set("id", eq(id))
	query.Set("user_id", eq(userID))

	var rows []journalRow
	if err := r.client.rest(ctx, http.MethodPatch, tableJournals, query, patch, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrJournalNotFound
	}

	updated := rows[0].toDomain()
	return &updated, nil
}

// Delete removes the row matching id and userID.
func (r *JournalRepository) Delete(ctx context.Context, id, userID string) error {
	query := url.Values{}
	query.Set("id", eq(id))
	query.Set("user_id", eq(userID))

	var rows []journalRow
	if err := r.client.rest(ctx, http.MethodDelete, tableJournals, query, nil, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrJournalNotFound
	}
	return nil
}
