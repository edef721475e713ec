package repository

import (
	"context"

	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/infra/db"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SyncLogRepository struct {
	db db.DBTX
}

func NewSyncLogRepository(dbtx db.DBTX) *SyncLogRepository {
	return &SyncLogRepository{db: dbtx}
}

// Append writes the per-batch audit record. The table is append-only; there
// is deliberately no update or delete here.
func (r *SyncLogRepository) Append(ctx context.Context, entry *shared.SyncLogEntry) (uuid.UUID, error) {
	const q = `
		INSERT INTO sync_logs (id, device_id, correlation_id, user_id, payload, results,
		                       total, synced, conflicts, errors, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	id := uuid.New()
	err := r.db.QueryRow(ctx, q,
		id,
		entry.DeviceID,
		entry.CorrelationID,
		entry.UserID,
		entry.Payload,
		entry.Results,
		entry.Total,
		entry.Synced,
		entry.Conflicts,
		entry.Errors,
		entry.SyncedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append sync log", err)
	}
	return id, nil
}
