package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/pkg/clock"
	"hotel-voucher-api/internal/pkg/errs"
	"hotel-voucher-api/internal/pkg/qrcode"
	"hotel-voucher-api/internal/pkg/signature"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStayNotFound            = errs.New("stay not found")
	ErrVoucherNotFound         = errs.New("voucher not found")
	ErrVoucherConflict         = errs.New("voucher conflict")
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrInvalidUnitCount        = errs.New("invalid unit count")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError carries the authoritative state of a voucher that refused a
// transition, so the losing caller can explain the outcome to its operator.
type ConflictError struct {
	Reason  voucher.InvalidReason
	Current *shared.VoucherSnapshot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("voucher conflict: %s", e.Reason)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrVoucherConflict
}

type EmitParams struct {
	StayID     uuid.UUID
	ValidFrom  time.Time
	ValidUntil time.Time
	UnitCount  int
	Actor      uuid.UUID
}

// IssuedVoucher is what the back office hands to the QR renderer.
type IssuedVoucher struct {
	ID        uuid.UUID
	Code      string
	Signature string
	QRPayload string
}

type EmitResult struct {
	StayID   uuid.UUID
	Vouchers []IssuedVoucher
}

type ValidateResult struct {
	Valid   bool
	Reason  voucher.InvalidReason
	Voucher *shared.VoucherSnapshot
}

type RedeemParams struct {
	Code        string
	CafeteriaID uuid.UUID
	DeviceID    string
	Actor       uuid.UUID
}

type RedeemResult struct {
	VoucherID   uuid.UUID
	Code        string
	RedeemedAt  time.Time
	CafeteriaID uuid.UUID
	DeviceID    string
}

type VoucherCommands interface {
	Emit(ctx context.Context, params EmitParams) (*EmitResult, error)
	Validate(ctx context.Context, code string, sig *string) (*ValidateResult, error)
	Redeem(ctx context.Context, params RedeemParams) (*RedeemResult, error)
	Cancel(ctx context.Context, code string, reason string, actor uuid.UUID) error
}

type voucherCommandsImpl struct {
	uow     shared.UnitOfWork
	signer  *signature.Signer
	codegen *voucher.CodeGenerator
	clock   clock.Clock
}

func NewVoucherCommands(
	uow shared.UnitOfWork,
	signer *signature.Signer,
	codegen *voucher.CodeGenerator,
	clock clock.Clock,
) VoucherCommands {
	return &voucherCommandsImpl{
		uow:     uow,
		signer:  signer,
		codegen: codegen,
		clock:   clock,
	}
}

// Emit mints unitCount signed vouchers for a stay in one transaction.
// Sequence numbers within the call are contiguous; a failure anywhere rolls
// back every row — partial emission is forbidden.
func (v *voucherCommandsImpl) Emit(ctx context.Context, params EmitParams) (*EmitResult, error) {
	if params.UnitCount < 1 {
		return nil, ErrInvalidUnitCount
	}

	window, err := voucher.NewValidityWindow(params.ValidFrom, params.ValidUntil)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	staySnap, err := v.uow.Reads().StayByID(ctx, params.StayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := window.WithinStay(staySnap.CheckIn, staySnap.CheckOut); err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	year := window.From().Year()
	issued := make([]IssuedVoucher, 0, params.UnitCount)

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		minted := make([]*voucher.Voucher, 0, params.UnitCount)
		for range params.UnitCount {
			seq, seqErr := tx.Vouchers().NextSequence(ctx, year)
			if seqErr != nil {
				return errs.Mark(seqErr, ErrDatabaseOperationFailed)
			}

			code := v.codegen.Format(year, seq)
			sig := v.signer.Sign(code, window.From(), window.Until(), params.StayID)

			entity, newErr := voucher.NewVoucher(code, params.StayID, window, sig)
			if newErr != nil {
				return errs.Mark(newErr, ErrDomainValidation)
			}
			minted = append(minted, entity)
		}

		if insErr := tx.Vouchers().InsertBatch(ctx, minted, v.clock.Now()); insErr != nil {
			return errs.Mark(insErr, ErrDatabaseOperationFailed)
		}

		for _, m := range minted {
			issued = append(issued, IssuedVoucher{
				ID:        m.ID(),
				Code:      m.Code(),
				Signature: m.Signature(),
				QRPayload: qrcode.Encode(qrcode.Payload{
					VoucherID: m.ID(),
					Code:      m.Code(),
					StayID:    m.StayID(),
				}),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &EmitResult{StayID: params.StayID, Vouchers: issued}, nil
}

// Validate checks a voucher without mutating it. A verification failure is a
// classified result, never an error; only a missing voucher or a storage
// failure surfaces as an error.
func (v *voucherCommandsImpl) Validate(ctx context.Context, code string, sig *string) (*ValidateResult, error) {
	snap, err := v.uow.Reads().VoucherByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Tamper check first, and without hinting which field differs.
	if sig != nil && !v.signer.Verify(snap.Code, snap.ValidFrom, snap.ValidUntil, snap.StayID, *sig) {
		return &ValidateResult{Valid: false, Reason: voucher.ReasonInvalidSignature}, nil
	}

	if reason, ok := snapshotBlockReason(snap, v.clock.Now()); !ok {
		return &ValidateResult{Valid: false, Reason: reason, Voucher: snap}, nil
	}

	return &ValidateResult{Valid: true, Voucher: snap}, nil
}

// Redeem consumes a voucher exactly once. The check-then-transition runs as
// a single conditional update in the store; under any number of concurrent
// or replayed calls on one code, exactly one caller wins and every loser
// receives a ConflictError with the winner's redemption metadata.
func (v *voucherCommandsImpl) Redeem(ctx context.Context, params RedeemParams) (*RedeemResult, error) {
	now := v.clock.Now()

	var result *RedeemResult
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome, err := tx.Vouchers().AtomicRedeem(ctx, params.Code, params.CafeteriaID, params.DeviceID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVoucherNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !outcome.Won {
			reason, _ := snapshotBlockReason(outcome.Voucher, now)
			return &ConflictError{Reason: reason, Current: outcome.Voucher}
		}

		snap := outcome.Voucher
		result = &RedeemResult{
			VoucherID:   snap.ID,
			Code:        snap.Code,
			RedeemedAt:  *snap.RedeemedAt,
			CafeteriaID: params.CafeteriaID,
			DeviceID:    params.DeviceID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Cancel withdraws an active voucher. Redeemed vouchers are immutable.
func (v *voucherCommandsImpl) Cancel(ctx context.Context, code string, reason string, _ uuid.UUID) error {
	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, err := tx.Vouchers().MarkCancelled(ctx, code, reason)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVoucherNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if cancelled {
			return nil
		}

		snap, err := tx.Reads().VoucherByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVoucherNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		blockReason := voucher.ReasonCancelled
		if voucher.Status(snap.Status) == voucher.StatusRedeemed {
			blockReason = voucher.ReasonAlreadyRedeemed
		}
		return &ConflictError{Reason: blockReason, Current: snap}
	})
}

// snapshotBlockReason mirrors voucher.BlockReason over a persistence snapshot.
func snapshotBlockReason(snap *shared.VoucherSnapshot, now time.Time) (voucher.InvalidReason, bool) {
	entity := voucher.ReconstructVoucher(
		snap.ID,
		snap.Code,
		snap.StayID,
		voucher.ReconstructValidityWindow(snap.ValidFrom, snap.ValidUntil),
		snap.Signature,
		voucher.Status(snap.Status),
		nil,
		nil,
		snap.CreatedAt,
	)
	return entity.BlockReason(now)
}
