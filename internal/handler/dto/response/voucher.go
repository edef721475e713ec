package response

import (
	"time"

	"hotel-voucher-api/internal/usecase/commands"
	"hotel-voucher-api/internal/usecase/queries"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type IssuedVoucherResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Signature string    `json:"signature"`
	QRPayload string    `json:"qr_payload"`
}

type EmitVouchersResponse struct {
	StayID   uuid.UUID               `json:"stay_id"`
	Vouchers []IssuedVoucherResponse `json:"vouchers"`
}

func FromEmitResult(result *commands.EmitResult) *EmitVouchersResponse {
	resp := &EmitVouchersResponse{StayID: result.StayID}
	_ = copier.Copy(&resp.Vouchers, result.Vouchers)
	return resp
}

type VoucherResponse struct {
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

func FromVoucherView(view *queries.VoucherView) *VoucherResponse {
	var resp VoucherResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type VoucherListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromVoucherListItems(items []*queries.VoucherListItem) []VoucherListItemResponse {
	resp := make([]VoucherListItemResponse, 0, len(items))
	_ = copier.Copy(&resp, items)
	return resp
}

// VoucherStateResponse is the trimmed view returned on validation results
// and redemption conflicts.
type VoucherStateResponse struct {
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	ValidFrom   time.Time  `json:"valid_from"`
	ValidUntil  time.Time  `json:"valid_until"`
	RedeemedAt  *time.Time `json:"redeemed_at,omitempty"`
	CafeteriaID *uuid.UUID `json:"cafeteria_id,omitempty"`
	DeviceID    *string    `json:"device_id,omitempty"`
}

func FromVoucherSnapshot(snap *shared.VoucherSnapshot) *VoucherStateResponse {
	if snap == nil {
		return nil
	}
	var resp VoucherStateResponse
	_ = copier.Copy(&resp, snap)
	return &resp
}

type ValidateVoucherResponse struct {
	Valid   bool                  `json:"valid"`
	Reason  string                `json:"reason,omitempty"`
	Voucher *VoucherStateResponse `json:"voucher,omitempty"`
}

func FromValidateResult(result *commands.ValidateResult) *ValidateVoucherResponse {
	return &ValidateVoucherResponse{
		Valid:   result.Valid,
		Reason:  result.Reason.String(),
		Voucher: FromVoucherSnapshot(result.Voucher),
	}
}

type RedeemVoucherResponse struct {
	VoucherID   uuid.UUID `json:"voucher_id"`
	Code        string    `json:"code"`
	RedeemedAt  time.Time `json:"redeemed_at"`
	CafeteriaID uuid.UUID `json:"cafeteria_id"`
	DeviceID    string    `json:"device_id"`
}

func FromRedeemResult(result *commands.RedeemResult) *RedeemVoucherResponse {
	var resp RedeemVoucherResponse
	_ = copier.Copy(&resp, result)
	return &resp
}

// ConflictResponse is the 409 body: the refusal reason plus the
// authoritative current state of the voucher.
type ConflictResponse struct {
	Error   string                `json:"error"`
	Reason  string                `json:"reason"`
	Current *VoucherStateResponse `json:"current,omitempty"`
}

func FromConflictError(conflict *commands.ConflictError) *ConflictResponse {
	return &ConflictResponse{
		Error:   "Voucher state conflict",
		Reason:  conflict.Reason.String(),
		Current: FromVoucherSnapshot(conflict.Current),
	}
}
