package domain

import "time"

const (
	DirectionLong  = "Long"
	DirectionShort = "Short"

	OutcomeWin       = "Win"
	OutcomeLoss      = "Loss"
	OutcomeBreakeven = "Breakeven"

	// StatusOpen is the default status for a newly created entry.
	StatusOpen = "Open"
)

// JournalEntry is a single trade journal record. UserID is always the id of
// the identity that created the entry; it is forced by the server and every
// write query filters on id AND user_id.
type JournalEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Symbol     string    `json:"symbol"`
	Direction  string    `json:"direction"`
	EntryPrice *float64  `json:"entry_price,omitempty"`
	ExitPrice  *float64  `json:"exit_price,omitempty"`
	StopLoss   *float64  `json:"stop_loss,omitempty"`
	TakeProfit *float64  `json:"take_profit,omitempty"`
	TradeSize  *float64  `json:"trade_size,omitempty"`
	TradeDate  time.Time `json:"trade_date"`
	Outcome    string    `json:"outcome,omitempty"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	Images     []string  `json:"images,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}
