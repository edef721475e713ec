package repository

import (
	"context"

	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/infra/db"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type StayRepository struct {
	db db.DBTX
}

func NewStayRepository(dbtx db.DBTX) *StayRepository {
	return &StayRepository{db: dbtx}
}

func (r *StayRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.StaySnapshot, error) {
	const q = `
		SELECT id, guest_name, check_in, check_out
		FROM stays
		WHERE id = $1`

	var snap shared.StaySnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.GuestName, &snap.CheckIn, &snap.CheckOut)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stay not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stay by ID", err)
	}
	return &snap, nil
}
