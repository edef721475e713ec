package request

import (
	"time"

	"hotel-voucher-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// RedemptionAttemptRequest fields carry no binding tags on purpose: a
// structurally broken attempt must still reach the reconciliation engine so
// it can be reported per-attempt instead of failing the whole batch.
type RedemptionAttemptRequest struct {
	LocalID        string    `json:"local_id"`
	VoucherCode    string    `json:"voucher_code"`
	CafeteriaID    uuid.UUID `json:"cafeteria_id"`
	LocalTimestamp time.Time `json:"local_timestamp"`
}

type SyncRedemptionsRequest struct {
	DeviceID      string                     `json:"device_id" binding:"required"`
	CorrelationID string                     `json:"correlation_id"`
	Redemptions   []RedemptionAttemptRequest `json:"redemptions" binding:"required"`
}

func (r SyncRedemptionsRequest) ToBatch(userID uuid.UUID) commands.SyncBatch {
	correlationID := r.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	attempts := make([]commands.RedemptionAttempt, len(r.Redemptions))
	for i, a := range r.Redemptions {
		attempts[i] = commands.RedemptionAttempt{
			LocalID:        a.LocalID,
			VoucherCode:    a.VoucherCode,
			CafeteriaID:    a.CafeteriaID,
			LocalTimestamp: a.LocalTimestamp,
		}
	}

	return commands.SyncBatch{
		DeviceID:      r.DeviceID,
		CorrelationID: correlationID,
		UserID:        userID,
		Redemptions:   attempts,
	}
}
