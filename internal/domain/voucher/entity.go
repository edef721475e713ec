package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode      = errors.New("voucher code must not be empty")
	ErrEmptySignature = errors.New("voucher signature must not be empty")
	ErrNotRedeemable  = errors.New("voucher is not redeemable")
	ErrNotCancellable = errors.New("voucher is not cancellable")
)

// RedemptionInfo is the authoritative record of who consumed a voucher.
// Losing concurrent redeemers receive it inside the conflict they get back.
type RedemptionInfo struct {
	RedeemedAt  time.Time
	CafeteriaID uuid.UUID
	DeviceID    string
}

type Voucher struct {
	id           uuid.UUID
	code         string
	stayID       uuid.UUID
	window       ValidityWindow
	signature    string
	status       Status
	redemption   *RedemptionInfo
	cancelReason *string
	createdAt    time.Time
}

// NewVoucher mints an active voucher. Code and signature are immutable from
// this point on; the signature must have been computed over exactly these
// field values.
func NewVoucher(code string, stayID uuid.UUID, window ValidityWindow, sig string) (*Voucher, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if sig == "" {
		return nil, ErrEmptySignature
	}

	return &Voucher{
		id:        uuid.New(),
		code:      code,
		stayID:    stayID,
		window:    window,
		signature: sig,
		status:    StatusActive,
	}, nil
}

func ReconstructVoucher(
	id uuid.UUID,
	code string,
	stayID uuid.UUID,
	window ValidityWindow,
	sig string,
	status Status,
	redemption *RedemptionInfo,
	cancelReason *string,
	createdAt time.Time,
) *Voucher {
	return &Voucher{
		id:           id,
		code:         code,
		stayID:       stayID,
		window:       window,
		signature:    sig,
		status:       status,
		redemption:   redemption,
		cancelReason: cancelReason,
		createdAt:    createdAt,
	}
}

// EffectiveStatus derives the read-time state: a stored-active voucher whose
// window has passed reads as expired without any persisted transition.
func (v *Voucher) EffectiveStatus(now time.Time) Status {
	if v.status == StatusActive && v.window.ExpiredAt(now) {
		return StatusExpired
	}
	return v.status
}

// BlockReason reports why the voucher cannot be redeemed at the given time,
// or ok=true if it can.
func (v *Voucher) BlockReason(now time.Time) (InvalidReason, bool) {
	switch v.status {
	case StatusRedeemed:
		return ReasonAlreadyRedeemed, false
	case StatusCancelled:
		return ReasonCancelled, false
	}
	if !v.window.Contains(now) {
		return ReasonExpired, false
	}
	return "", true
}

// Redeem transitions active → redeemed. The persistence layer enforces the
// same guard atomically; this is the in-memory expression of the rule.
func (v *Voucher) Redeem(now time.Time, cafeteriaID uuid.UUID, deviceID string) error {
	if _, ok := v.BlockReason(now); !ok {
		return ErrNotRedeemable
	}
	v.status = StatusRedeemed
	v.redemption = &RedemptionInfo{
		RedeemedAt:  now,
		CafeteriaID: cafeteriaID,
		DeviceID:    deviceID,
	}
	return nil
}

// Cancel transitions active → cancelled. Redeemed vouchers stay redeemed:
// cancellation after consumption would corrupt the audit trail.
func (v *Voucher) Cancel(reason string) error {
	if v.status != StatusActive {
		return ErrNotCancellable
	}
	v.status = StatusCancelled
	v.cancelReason = &reason
	return nil
}

func (v *Voucher) ID() uuid.UUID               { return v.id }
func (v *Voucher) Code() string                { return v.code }
func (v *Voucher) StayID() uuid.UUID           { return v.stayID }
func (v *Voucher) Window() ValidityWindow      { return v.window }
func (v *Voucher) Signature() string           { return v.signature }
func (v *Voucher) Status() Status              { return v.status }
func (v *Voucher) Redemption() *RedemptionInfo { return v.redemption }
func (v *Voucher) CancelReason() *string       { return v.cancelReason }
func (v *Voucher) CreatedAt() time.Time        { return v.createdAt }
