package readstore

import (
	"context"

	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/infra/db"
	"hotel-voucher-api/internal/pkg/qrcode"
	"hotel-voucher-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(dbtx db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: dbtx}
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	const q = `
		SELECT v.id, v.code, v.stay_id, s.guest_name,
		       v.valid_from, v.valid_until, v.signature, v.status,
		       v.redeemed_at, v.cafeteria_id, v.device_id, v.cancel_reason, v.created_at
		FROM vouchers v
		JOIN stays s ON s.id = v.stay_id
		WHERE v.code = $1`

	var view queries.VoucherView
	err := r.db.QueryRow(ctx, q, code).Scan(
		&view.ID,
		&view.Code,
		&view.StayID,
		&view.GuestName,
		&view.ValidFrom,
		&view.ValidUntil,
		&view.Signature,
		&view.Status,
		&view.RedeemedAt,
		&view.CafeteriaID,
		&view.DeviceID,
		&view.CancelReason,
		&view.CreatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}

	// The QR payload is derivable from stored fields, so it is rebuilt here
	// rather than persisted.
	view.QRPayload = qrcode.Encode(qrcode.Payload{
		VoucherID: view.ID,
		Code:      view.Code,
		StayID:    view.StayID,
	})
	return &view, nil
}

func (r *VoucherReadStore) FindByStayID(ctx context.Context, stayID uuid.UUID) ([]*queries.VoucherListItem, error) {
	const q = `
		SELECT id, code, status, valid_from, valid_until, created_at
		FROM vouchers
		WHERE stay_id = $1
		ORDER BY code`

	rows, err := r.db.Query(ctx, q, stayID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers by stay", err)
	}
	defer rows.Close()

	var items []*queries.VoucherListItem
	for rows.Next() {
		var item queries.VoucherListItem
		if err := rows.Scan(
			&item.ID,
			&item.Code,
			&item.Status,
			&item.ValidFrom,
			&item.ValidUntil,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate voucher rows", err)
	}
	return items, nil
}
