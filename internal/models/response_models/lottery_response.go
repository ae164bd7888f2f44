package response_models

import "github.com/google/uuid"

type EntryResponse struct {
	EntryID       uuid.UUID `json:"entry_id"`
	TransactionID string    `json:"transaction_id"`
	Numbers       []string  `json:"numbers"`
	CreatedAt     int64     `json:"created_at"`
}

type UserEntryResponse struct {
	Numbers   []string `json:"numbers"`
	CreatedAt int64    `json:"created_at"`
}

type PoolNumberResponse struct {
	Number    string `json:"number"`
	UserID    string `json:"user_id"`
	CreatedAt int64  `json:"created_at"`
}

type WinnerResponse struct {
	WinnerID      uuid.UUID `json:"winner_id"`
	UserID        string    `json:"user_id"`
	WinningNumber string    `json:"winning_number"`
	Epoch         int64     `json:"epoch"`
	CreatedAt     int64     `json:"created_at"`
}

type StatsResponse struct {
	ParticipantCount int64 `json:"participant_count"`
	TicketCount      int64 `json:"ticket_count"`
	Revenue          int64 `json:"revenue"`
}

type RewardResponse struct {
	IsWinner      bool   `json:"is_winner"`
	WinningNumber string `json:"winning_number,omitempty"`
	RewardAmount  int64  `json:"reward_amount,omitempty"`
	ClaimedAt     int64  `json:"claimed_at,omitempty"`
}
