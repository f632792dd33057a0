package handler

import "time"

// createJournalRequest is the bindable payload for POST /api/journals/.
// There is no user_id field: the owner is always the
// authenticated caller, whatever the client sends.
type createJournalRequest struct {
	Symbol     string     `json:"symbol"      validate:"required"`
	Direction  string     `json:"direction"   validate:"required,oneof=Long Short"`
	EntryPrice *float64   `json:"entry_price" validate:"omitempty,gt=0"`
	ExitPrice  *float64   `json:"exit_price"  validate:"omitempty,gt=0"`
	StopLoss   *float64   `json:"stop_loss"   validate:"omitempty,gt=0"`
	TakeProfit *float64   `json:"take_profit" validate:"omitempty,gt=0"`
	TradeSize  *float64   `json:"trade_size"  validate:"omitempty,gt=0"`
	TradeDate  *time.Time `json:"trade_date"`
	Outcome    string     `json:"outcome"     validate:"omitempty,oneof=Win Loss Breakeven"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
	Images     []string   `json:"images"`
}

// updateJournalRequest is the bindable payload for PUT /api/journals/:id.
// Every field is a pointer: absent fields stay untouched on the stored row.
type updateJournalRequest struct {
	Symbol     *string    `json:"symbol"`
	Direction  *string    `json:"direction"   validate:"omitempty,oneof=Long Short"`
	EntryPrice *float64   `json:"entry_price" validate:"omitempty,gt=0"`
	ExitPrice  *float64   `json:"exit_price"  validate:"omitempty,gt=0"`
	StopLoss   *float64   `json:"stop_loss"   validate:"omitempty,gt=0"`
	TakeProfit *float64   `json:"take_profit" validate:"omitempty,gt=0"`
	TradeSize  *float64   `json:"trade_size"  validate:"omitempty,gt=0"`
	TradeDate  *time.Time `json:"trade_date"`
	Outcome    *string    `json:"outcome"     validate:"omitempty,oneof=Win Loss Breakeven"`
	Status     *string    `json:"status"`
	Notes      *string    `json:"notes"`
	Images     *[]string  `json:"images"`
}
