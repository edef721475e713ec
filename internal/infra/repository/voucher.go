package repository

import (
	"context"
	"errors"
	"time"

	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/infra/db"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type VoucherRepository struct {
	db db.DBTX
}

func NewVoucherRepository(dbtx db.DBTX) *VoucherRepository {
	return &VoucherRepository{db: dbtx}
}

// NextSequence bumps the per-year counter in one statement. The upsert makes
// the counter spring into existence at 1 for a fresh year; concurrent
// callers serialize on the row lock, so values are gap-free and contiguous.
func (r *VoucherRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	const q = `
		INSERT INTO voucher_sequences (year, value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET value = voucher_sequences.value + 1
		RETURNING value`

	var seq int64
	if err := r.db.QueryRow(ctx, q, year).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate voucher sequence", err)
	}
	return seq, nil
}

func (r *VoucherRepository) InsertBatch(ctx context.Context, vouchers []*voucher.Voucher, createdAt time.Time) error {
	const q = `
		INSERT INTO vouchers (id, code, stay_id, valid_from, valid_until, signature, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, v := range vouchers {
		_, err := r.db.Exec(ctx, q,
			v.ID(),
			v.Code(),
			v.StayID(),
			v.Window().From(),
			v.Window().Until(),
			v.Signature(),
			v.Status().String(),
			createdAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
				return infra.WrapRepoErr("voucher code already exists", err, infra.KindDuplicateKey)
			}
			return infra.WrapRepoErr("failed to insert voucher", err)
		}
	}
	return nil
}

// AtomicRedeem is the compare-and-swap at the heart of exactly-once
// redemption: the UPDATE only matches a row that is still active and inside
// its validity window, so of any number of concurrent callers exactly one
// sees a row come back. Losers get the current row instead.
func (r *VoucherRepository) AtomicRedeem(ctx context.Context, code string, cafeteriaID uuid.UUID, deviceID string, now time.Time) (*shared.RedeemOutcome, error) {
	const q = `
		UPDATE vouchers
		SET status = 'redeemed', redeemed_at = $2, cafeteria_id = $3, device_id = $4
		WHERE code = $1
		  AND status = 'active'
		  AND valid_from <= $5::date
		  AND valid_until >= $5::date
		RETURNING id, code, stay_id, valid_from, valid_until, signature, status,
		          redeemed_at, cafeteria_id, device_id, cancel_reason, created_at`

	snap, err := scanVoucher(r.db.QueryRow(ctx, q, code, now, cafeteriaID, deviceID, now))
	if err == nil {
		return &shared.RedeemOutcome{Won: true, Voucher: snap}, nil
	}
	if !db.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to redeem voucher", err)
	}

	// Lost the race, already terminal, or expired: fetch the authoritative row.
	current, err := r.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &shared.RedeemOutcome{Won: false, Voucher: current}, nil
}

func (r *VoucherRepository) MarkCancelled(ctx context.Context, code string, reason string) (bool, error) {
	const q = `
		UPDATE vouchers
		SET status = 'cancelled', cancel_reason = $2
		WHERE code = $1 AND status = 'active'`

	tag, err := r.db.Exec(ctx, q, code, reason)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel voucher", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *VoucherRepository) FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	const q = `
		SELECT id, code, stay_id, valid_from, valid_until, signature, status,
		       redeemed_at, cafeteria_id, device_id, cancel_reason, created_at
		FROM vouchers
		WHERE code = $1`

	snap, err := scanVoucher(r.db.QueryRow(ctx, q, code))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoucher(row rowScanner) (*shared.VoucherSnapshot, error) {
	var snap shared.VoucherSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Code,
		&snap.StayID,
		&snap.ValidFrom,
		&snap.ValidUntil,
		&snap.Signature,
		&snap.Status,
		&snap.RedeemedAt,
		&snap.CafeteriaID,
		&snap.DeviceID,
		&snap.CancelReason,
		&snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
