package ports

import (
	"context"
	"time"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

// CreateJournalInput carries the client-supplied fields of a new entry. The
// owner is never part of the input; it is always the authenticated caller.
type CreateJournalInput struct {
	Symbol     string
	Direction  string
	EntryPrice *float64
	ExitPrice  *float64
	StopLoss   *float64
	TakeProfit *float64
	TradeSize  *float64
	TradeDate  *time.Time
	Outcome    string
	Status     string
	Notes      string
	Images     []string
}

// UpdateJournalInput is a partial update: nil fields are left untouched.
type UpdateJournalInput struct {
	Symbol     *string
	Direction  *string
	EntryPrice *float64
	ExitPrice  *float64
	StopLoss   *float64
	TakeProfit *float64
	TradeSize  *float64
	TradeDate  *time.Time
	Outcome    *string
	Status     *string
	Notes      *string
	Images     *[]string
}

// JournalService defines the use-case operations over trade journal entries.
type JournalService interface {
	// List returns targetUserID's entries when given (any authenticated
	// caller may read any user's journal list), else the caller's own.
	List(ctx context.Context, callerID, targetUserID string) ([]domain.JournalEntry, error)
	Create(ctx context.Context, owner domain.Identity, input CreateJournalInput) (*domain.JournalEntry, error)
	Update(ctx context.Context, callerID, journalID string, input UpdateJournalInput) (*domain.JournalEntry, error)
	Delete(ctx context.Context, callerID, journalID string) error
}
