//go:build unit || e2e

package builder

import (
	"time"

	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/pkg/qrcode"
	"hotel-voucher-api/internal/usecase/queries"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
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

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:         uuid.New(),
		Code:       "HPN-2025-0001",
		StayID:     uuid.New(),
		ValidFrom:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Signature:  "deadbeef",
		Status:     "active",
		CreatedAt:  time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VoucherBuilder) BuildDomain() *voucher.Voucher {
	var redemption *voucher.RedemptionInfo
	if b.RedeemedAt != nil {
		var cafeteriaID uuid.UUID
		if b.CafeteriaID != nil {
			cafeteriaID = *b.CafeteriaID
		}
		deviceID := ""
		if b.DeviceID != nil {
			deviceID = *b.DeviceID
		}
		redemption = &voucher.RedemptionInfo{
			RedeemedAt:  *b.RedeemedAt,
			CafeteriaID: cafeteriaID,
			DeviceID:    deviceID,
		}
	}

	return voucher.ReconstructVoucher(
		b.ID,
		b.Code,
		b.StayID,
		voucher.ReconstructValidityWindow(b.ValidFrom, b.ValidUntil),
		b.Signature,
		voucher.Status(b.Status),
		redemption,
		b.CancelReason,
		b.CreatedAt,
	)
}

func (b *VoucherBuilder) BuildSnapshot() *shared.VoucherSnapshot {
	return &shared.VoucherSnapshot{
		ID:           b.ID,
		Code:         b.Code,
		StayID:       b.StayID,
		ValidFrom:    b.ValidFrom,
		ValidUntil:   b.ValidUntil,
		Signature:    b.Signature,
		Status:       b.Status,
		RedeemedAt:   b.RedeemedAt,
		CafeteriaID:  b.CafeteriaID,
		DeviceID:     b.DeviceID,
		CancelReason: b.CancelReason,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *VoucherBuilder) BuildView(guestName string) *queries.VoucherView {
	return &queries.VoucherView{
		ID:           b.ID,
		Code:         b.Code,
		StayID:       b.StayID,
		GuestName:    guestName,
		ValidFrom:    b.ValidFrom,
		ValidUntil:   b.ValidUntil,
		Signature:    b.Signature,
		Status:       b.Status,
		QRPayload:    qrcode.Encode(qrcode.Payload{VoucherID: b.ID, Code: b.Code, StayID: b.StayID}),
		RedeemedAt:   b.RedeemedAt,
		CafeteriaID:  b.CafeteriaID,
		DeviceID:     b.DeviceID,
		CancelReason: b.CancelReason,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *VoucherBuilder) BuildListItem() queries.VoucherListItem {
	return queries.VoucherListItem{
		ID:         b.ID,
		Code:       b.Code,
		Status:     b.Status,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.Code = code
	return b
}

func (b *VoucherBuilder) WithStayID(stayID uuid.UUID) *VoucherBuilder {
	b.StayID = stayID
	return b
}

func (b *VoucherBuilder) WithWindow(from, until time.Time) *VoucherBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *VoucherBuilder) WithSignature(sig string) *VoucherBuilder {
	b.Signature = sig
	return b
}

func (b *VoucherBuilder) AsRedeemed(at time.Time, cafeteriaID uuid.UUID, deviceID string) *VoucherBuilder {
	b.Status = "redeemed"
	b.RedeemedAt = &at
	b.CafeteriaID = &cafeteriaID
	b.DeviceID = &deviceID
	return b
}

func (b *VoucherBuilder) AsCancelled(reason string) *VoucherBuilder {
	b.Status = "cancelled"
	b.CancelReason = &reason
	return b
}
