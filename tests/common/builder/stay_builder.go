//go:build unit || e2e

package builder

import (
	"time"

	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type StayBuilder struct {
	ID        uuid.UUID
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		ID:        uuid.New(),
		GuestName: "山田太郎",
		CheckIn:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
	}
}

func (b *StayBuilder) WithPeriod(checkIn, checkOut time.Time) *StayBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *StayBuilder) BuildSnapshot() *shared.StaySnapshot {
	return &shared.StaySnapshot{
		ID:        b.ID,
		GuestName: b.GuestName,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
	}
}
