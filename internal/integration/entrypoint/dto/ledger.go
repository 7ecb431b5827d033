// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
)

// CreateEntryRequest represents the request body for ledger entry creation.
type CreateEntryRequest struct {
	Label    string  `json:"label" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"`
	Category string  `json:"category,omitempty" binding:"omitempty,max=100"`
}

// UpdateEntryRequest represents the request body for a partial entry update.
type UpdateEntryRequest struct {
	Label    *string  `json:"label,omitempty" binding:"omitempty,min=1,max=255"`
	Amount   *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date     *string  `json:"date,omitempty"`
	Category *string  `json:"category,omitempty" binding:"omitempty,max=100"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryListResponse represents a list of ledger entries in API responses.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a use case entry output to an EntryResponse DTO.
func ToEntryResponse(entry *ledger.EntryOutput) EntryResponse {
	return EntryResponse{
		ID:        entry.ID.String(),
		UserID:    entry.UserID.String(),
		Kind:      string(entry.Kind),
		Label:     entry.Label,
		Amount:    entry.Amount.StringFixed(2),
		Date:      entry.Date.Format("2006-01-02"),
		Category:  entry.Category,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToEntryListResponse converts use case entry outputs to an EntryListResponse DTO.
func ToEntryListResponse(entries []*ledger.EntryOutput) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryResponse(entry)
	}
	return EntryListResponse{Entries: responses}
}
