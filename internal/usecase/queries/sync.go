package queries

import (
	"context"
	"time"
)

const defaultHistoryLimit = 50

// SyncQueries is reporting only; nothing here participates in the
// correctness-critical redemption path.
type SyncQueries interface {
	History(ctx context.Context, deviceID string, limit int) ([]*SyncLogView, error)
	Stats(ctx context.Context, deviceID string, from, to time.Time) (*SyncStatsView, error)
}

type SyncLogReadStore interface {
	FindByDeviceID(ctx context.Context, deviceID string, limit int32) ([]*SyncLogView, error)
	AggregateByDeviceID(ctx context.Context, deviceID string, from, to time.Time) (*SyncStatsView, error)
}

type syncQueriesImpl struct {
	store SyncLogReadStore
}

func NewSyncQueries(store SyncLogReadStore) SyncQueries {
	return &syncQueriesImpl{store: store}
}

func (q *syncQueriesImpl) History(ctx context.Context, deviceID string, limit int) ([]*SyncLogView, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}
	return q.store.FindByDeviceID(ctx, deviceID, int32(limit))
}

func (q *syncQueriesImpl) Stats(ctx context.Context, deviceID string, from, to time.Time) (*SyncStatsView, error) {
	stats, err := q.store.AggregateByDeviceID(ctx, deviceID, from, to)
	if err != nil {
		return nil, err
	}
	stats.DeviceID = deviceID
	stats.From = from
	stats.To = to
	return stats, nil
}
