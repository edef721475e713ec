package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VoucherView struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	StayID       uuid.UUID  `json:"stay_id"`
	GuestName    string     `json:"guest_name"`
	ValidFrom    time.Time  `json:"valid_from"`
	ValidUntil   time.Time  `json:"valid_until"`
	Signature    string     `json:"signature"`
	Status       string     `json:"status"`
	QRPayload    string     `json:"qr_payload"`
	RedeemedAt   *time.Time `json:"redeemed_at,omitempty"`
	CafeteriaID  *uuid.UUID `json:"cafeteria_id,omitempty"`
	DeviceID     *string    `json:"device_id,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type VoucherListItem struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `json:"created_at"`
}

type SyncLogView struct {
	ID            uuid.UUID       `json:"id"`
	DeviceID      string          `json:"device_id"`
	CorrelationID string          `json:"correlation_id"`
	UserID        uuid.UUID       `json:"user_id"`
	Total         int32           `json:"total"`
	Synced        int32           `json:"synced"`
	Conflicts     int32           `json:"conflicts"`
	Errors        int32           `json:"errors"`
	Results       json.RawMessage `json:"results"`
	SyncedAt      time.Time       `json:"synced_at"`
}

type SyncStatsView struct {
	DeviceID  string    `json:"device_id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Batches   int64     `json:"batches"`
	Total     int64     `json:"total"`
	Synced    int64     `json:"synced"`
	Conflicts int64     `json:"conflicts"`
	Errors    int64     `json:"errors"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	CafeteriaID *uuid.UUID `json:"cafeteria_id,omitempty"`
	IsActive    bool       `json:"is_active"`
}
