package readstore

import (
	"context"
	"time"

	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/infra/db"
	"hotel-voucher-api/internal/usecase/queries"
)

type SyncLogReadStore struct {
	db db.DBTX
}

func NewSyncLogReadStore(dbtx db.DBTX) *SyncLogReadStore {
	return &SyncLogReadStore{db: dbtx}
}

func (r *SyncLogReadStore) FindByDeviceID(ctx context.Context, deviceID string, limit int32) ([]*queries.SyncLogView, error) {
	const q = `
		SELECT id, device_id, correlation_id, user_id,
		       total, synced, conflicts, errors, results, synced_at
		FROM sync_logs
		WHERE device_id = $1
		ORDER BY synced_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, deviceID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sync logs", err)
	}
	defer rows.Close()

	var views []*queries.SyncLogView
	for rows.Next() {
		var view queries.SyncLogView
		if err := rows.Scan(
			&view.ID,
			&view.DeviceID,
			&view.CorrelationID,
			&view.UserID,
			&view.Total,
			&view.Synced,
			&view.Conflicts,
			&view.Errors,
			&view.Results,
			&view.SyncedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sync log row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sync log rows", err)
	}
	return views, nil
}

func (r *SyncLogReadStore) AggregateByDeviceID(ctx context.Context, deviceID string, from, to time.Time) (*queries.SyncStatsView, error) {
	const q = `
		SELECT COUNT(*),
		       COALESCE(SUM(total), 0),
		       COALESCE(SUM(synced), 0),
		       COALESCE(SUM(conflicts), 0),
		       COALESCE(SUM(errors), 0)
		FROM sync_logs
		WHERE device_id = $1 AND synced_at >= $2 AND synced_at < $3`

	var stats queries.SyncStatsView
	err := r.db.QueryRow(ctx, q, deviceID, from, to).Scan(
		&stats.Batches,
		&stats.Total,
		&stats.Synced,
		&stats.Conflicts,
		&stats.Errors,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate sync logs", err)
	}
	return &stats, nil
}
