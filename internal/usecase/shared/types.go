package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type StaySnapshot struct {
	ID        uuid.UUID
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
}

type VoucherSnapshot struct {
	ID           uuid.UUID
	Code         string
	StayID       uuid.UUID
	ValidFrom    time.Time
	ValidUntil   time.Time
	Signature    string
	Status       string
	RedeemedAt   *time.Time
	CafeteriaID  *uuid.UUID
	DeviceID     *string
	CancelReason *string
	CreatedAt    time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CafeteriaID  *uuid.UUID
	IsActive     bool
}

// SyncLogEntry is the append-only audit record written once per uploaded
// batch, whatever the outcome mix. Payload and Results are the raw JSON of
// the request and the per-attempt classifications.
type SyncLogEntry struct {
	DeviceID      string
	CorrelationID string
	UserID        uuid.UUID
	Payload       []byte
	Results       []byte
	Total         int32
	Synced        int32
	Conflicts     int32
	Errors        int32
	SyncedAt      time.Time
}
