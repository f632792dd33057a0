package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradingdash/journal-api/internal/core/domain"
	"github.com/tradingdash/journal-api/internal/core/ports"
)

// JournalService implements the trade journal use cases. Ownership scoping is
// enforced here and in the repository: every write is filtered on both the
// entry id and the caller's user id.
type JournalService struct {
	repo   ports.JournalRepository
	logger zerolog.Logger
}

func NewJournalService(repo ports.JournalRepository, logger zerolog.Logger) *JournalService {
	return &JournalService{repo: repo, logger: logger}
}

// List returns targetUserID's entries when given, else the caller's own.
// Reads are not ownership-scoped: any authenticated caller may
// view any user's journal list.
func (s *JournalService) List(ctx context.Context, callerID, targetUserID string) ([]domain.JournalEntry, error) {
	target := targetUserID
	if target == "" {
		target = callerID
	}
	return s.repo.ListByUser(ctx, target)
}

// Create stores a new entry owned by the caller. Any client-supplied owner is
// ignored: UserID always comes from the verified identity.
func (s *JournalService) Create(ctx context.Context, owner domain.Identity, input ports.CreateJournalInput) (*domain.JournalEntry, error) {
	entry := &domain.JournalEntry{
		UserID:     owner.ID,
		Symbol:     input.Symbol,
		Direction:  input.Direction,
		EntryPrice: input.EntryPrice,
		ExitPrice:  input.ExitPrice,
		StopLoss:   input.StopLoss,
		TakeProfit: input.TakeProfit,
		TradeSize:  input.TradeSize,
		Outcome:    input.Outcome,
		Status:     input.Status,
		Notes:      input.Notes,
		Images:     input.Images,
	}
	if input.TradeDate != nil {
		entry.TradeDate = input.TradeDate.UTC()
	} else {
		entry.TradeDate = time.Now().UTC()
	}
	if entry.Status == "" {
		entry.Status = domain.StatusOpen
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", owner.ID).Msg("journal insert failed")
		return nil, err
	}

	s.logger.Info().Str("journal_id", created.ID).Str("user_id", created.UserID).
		Str("symbol", created.Symbol).Msg("journal created")
	return created, nil
}

// Update applies only the fields present in input to the caller's entry.
// Zero rows affected surfaces as domain.ErrJournalNotFound, which covers both
// a missing entry and an entry owned by someone else.
func (s *JournalService) Update(ctx context.Context, callerID, journalID string, input ports.UpdateJournalInput) (*domain.JournalEntry, error) {
	patch := buildPatch(input)
	if len(patch) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.Update(ctx, journalID, callerID, patch)
}

// Delete removes the caller's entry, with the same not-found masking as
// Update.
func (s *JournalService) Delete(ctx context.Context, callerID, journalID string) error {
	return s.repo.Delete(ctx, journalID, callerID)
}

func buildPatch(input ports.UpdateJournalInput) ports.JournalPatch {
	patch := ports.JournalPatch{}
	if input.Symbol != nil {
		patch["symbol"] = *input.Symbol
	}
	if input.Direction != nil {
		patch["direction"] = *input.Direction
	}
	if input.EntryPrice != nil {
		patch["entry_price"] = *input.EntryPrice
	}
	if input.ExitPrice != nil {
		patch["exit_price"] = *input.ExitPrice
	}
	if input.StopLoss != nil {
		patch["stop_loss"] = *input.StopLoss
	}
	if input.TakeProfit != nil {
		patch["take_profit"] = *input.TakeProfit
	}
	if input.TradeSize != nil {
		patch["trade_size"] = *input.TradeSize
	}
	if input.TradeDate != nil {
		patch["trade_date"] = input.TradeDate.UTC()
	}
	if input.Outcome != nil {
		patch["outcome"] = *input.Outcome
	}
	if input.Status != nil {
		patch["status"] = *input.Status
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}
	if input.Images != nil {
		patch["images"] = *input.Images
	}
	return patch
}
