package request

import (
	"time"

	"hotel-voucher-api/internal/pkg/patch"
	"hotel-voucher-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// EmitVouchersRequest issues vouchers for a stay. unit_count defaults to one
// voucher when omitted.
type EmitVouchersRequest struct {
	ValidFrom  string `json:"valid_from" binding:"required"`
	ValidUntil string `json:"valid_until" binding:"required"`
	UnitCount  *int   `json:"unit_count" binding:"omitempty,min=1"`
}

// Window parses the date-only bounds. Times of day are never accepted here;
// the validity window is a whole-day range.
func (r EmitVouchersRequest) Window() (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, r.ValidFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	until, err := time.Parse(time.DateOnly, r.ValidUntil)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, until, nil
}

func (r EmitVouchersRequest) ToParams(stayID, actor uuid.UUID) (commands.EmitParams, error) {
	from, until, err := r.Window()
	if err != nil {
		return commands.EmitParams{}, err
	}
	return commands.EmitParams{
		StayID:     stayID,
		ValidFrom:  from,
		ValidUntil: until,
		UnitCount:  patch.Coalesce(r.UnitCount, 1),
		Actor:      actor,
	}, nil
}

// ValidateVoucherRequest accepts either a bare code or a scanned QR payload.
type ValidateVoucherRequest struct {
	Code      string  `json:"code"`
	QRPayload *string `json:"qr_payload,omitempty"`
	Signature *string `json:"signature,omitempty"`
}

type RedeemVoucherRequest struct {
	CafeteriaID uuid.UUID `json:"cafeteria_id" binding:"required"`
	DeviceID    string    `json:"device_id" binding:"required"`
}

type CancelVoucherRequest struct {
	Reason string `json:"reason" binding:"required"`
}
