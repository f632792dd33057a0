package ports

import (
	"context"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

// JournalPatch carries the columns of a partial update. Only keys present in
// the map are written; absent columns are left untouched.
type JournalPatch map[string]any

// JournalRepository defines persistence operations on the trade_journals
// table. Update and Delete filter on id AND userID so a row owned by someone
// else is indistinguishable from a missing row.
type JournalRepository interface {
	// ListByUser returns all entries owned by userID ordered by trade_date
	// descending.
	ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error)
	// Insert stores a new entry and returns the created row.
	Insert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	// Update applies patch to the row matching id and userID and returns the
	// updated row, or domain.ErrJournalNotFound when no row was affected.
	Update(ctx context.Context, id, userID string, patch JournalPatch) (*domain.JournalEntry, error)
	// Delete removes the row matching id and userID, or returns
	// domain.ErrJournalNotFound when no row was affected.
	Delete(ctx context.Context, id, userID string) error
}
