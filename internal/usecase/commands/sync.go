package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-voucher-api/internal/pkg/clock"
	"hotel-voucher-api/internal/pkg/errs"
	"hotel-voucher-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSyncLogAppendFailed = errs.New("sync log append failed")

// Attempt statuses reported back to the device.
const (
	AttemptSynced   = "synced"
	AttemptConflict = "conflict"
	AttemptError    = "error"
)

// ReasonInvalidStructure marks attempts rejected before the lifecycle engine
// is ever consulted.
const ReasonInvalidStructure = "INVALID_STRUCTURE"

// RedemptionAttempt is one queued offline redemption uploaded by a device.
// LocalID is the device-assigned idempotency key.
type RedemptionAttempt struct {
	LocalID        string    `json:"local_id"`
	VoucherCode    string    `json:"voucher_code"`
	CafeteriaID    uuid.UUID `json:"cafeteria_id"`
	LocalTimestamp time.Time `json:"local_timestamp"`
}

type SyncBatch struct {
	DeviceID      string              `json:"device_id"`
	CorrelationID string              `json:"correlation_id"`
	UserID        uuid.UUID           `json:"user_id"`
	Redemptions   []RedemptionAttempt `json:"redemptions"`
}

// ConflictDetail is the authoritative existing-redemption metadata handed to
// the device so it can reconcile its local queue.
type ConflictDetail struct {
	Status      string     `json:"status"`
	RedeemedAt  *time.Time `json:"redeemed_at,omitempty"`
	CafeteriaID *uuid.UUID `json:"cafeteria_id,omitempty"`
	DeviceID    *string    `json:"device_id,omitempty"`
}

type AttemptResult struct {
	LocalID      string          `json:"local_id"`
	Status       string          `json:"status"`
	Reason       string          `json:"reason,omitempty"`
	RedemptionID *uuid.UUID      `json:"redemption_id,omitempty"`
	RedeemedAt   *time.Time      `json:"redeemed_at,omitempty"`
	Conflict     *ConflictDetail `json:"conflict,omitempty"`
}

type SyncSummary struct {
	Total     int `json:"total"`
	Synced    int `json:"synced"`
	Conflicts int `json:"conflicts"`
	Errors    int `json:"errors"`
}

type SyncResult struct {
	Success bool            `json:"success"`
	Summary SyncSummary     `json:"summary"`
	Results []AttemptResult `json:"results"`
}

type SyncCommands interface {
	SyncRedemptions(ctx context.Context, batch SyncBatch) (*SyncResult, error)
}

type syncCommandsImpl struct {
	vouchers VoucherCommands
	uow      shared.UnitOfWork
	clock    clock.Clock
}

func NewSyncCommands(vouchers VoucherCommands, uow shared.UnitOfWork, clock clock.Clock) SyncCommands {
	return &syncCommandsImpl{
		vouchers: vouchers,
		uow:      uow,
		clock:    clock,
	}
}

// SyncRedemptions replays a batch of offline redemption attempts against the
// lifecycle engine. Attempts are processed independently: this is the
// failure-containment boundary, so one bad attempt never aborts the rest.
// Resubmitting an identical batch is safe — previously synced entries come
// back as conflicts, never as a second redemption.
func (s *syncCommandsImpl) SyncRedemptions(ctx context.Context, batch SyncBatch) (*SyncResult, error) {
	results := make([]AttemptResult, 0, len(batch.Redemptions))
	summary := SyncSummary{Total: len(batch.Redemptions)}

	for _, attempt := range batch.Redemptions {
		res := s.processAttempt(ctx, batch, attempt)
		switch res.Status {
		case AttemptSynced:
			summary.Synced++
		case AttemptConflict:
			summary.Conflicts++
		default:
			summary.Errors++
		}
		results = append(results, res)
	}

	if err := s.appendLog(ctx, batch, results, summary); err != nil {
		return nil, err
	}

	return &SyncResult{
		Success: true,
		Summary: summary,
		Results: results,
	}, nil
}

func (s *syncCommandsImpl) processAttempt(ctx context.Context, batch SyncBatch, attempt RedemptionAttempt) AttemptResult {
	if attempt.LocalID == "" || attempt.VoucherCode == "" {
		return AttemptResult{
			LocalID: attempt.LocalID,
			Status:  AttemptError,
			Reason:  ReasonInvalidStructure,
		}
	}

	redeemed, err := s.vouchers.Redeem(ctx, RedeemParams{
		Code:        attempt.VoucherCode,
		CafeteriaID: attempt.CafeteriaID,
		DeviceID:    batch.DeviceID,
		Actor:       batch.UserID,
	})
	if err != nil {
		return s.classifyFailure(attempt, err)
	}

	return AttemptResult{
		LocalID:      attempt.LocalID,
		Status:       AttemptSynced,
		RedemptionID: &redeemed.VoucherID,
		RedeemedAt:   &redeemed.RedeemedAt,
	}
}

func (s *syncCommandsImpl) classifyFailure(attempt RedemptionAttempt, err error) AttemptResult {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		detail := &ConflictDetail{Status: conflict.Current.Status}
		detail.RedeemedAt = conflict.Current.RedeemedAt
		detail.CafeteriaID = conflict.Current.CafeteriaID
		detail.DeviceID = conflict.Current.DeviceID
		return AttemptResult{
			LocalID:  attempt.LocalID,
			Status:   AttemptConflict,
			Reason:   conflict.Reason.String(),
			Conflict: detail,
		}
	}

	reason := "INTERNAL_ERROR"
	if errors.Is(err, ErrVoucherNotFound) {
		reason = "VOUCHER_NOT_FOUND"
	}
	slog.Warn("sync attempt failed",
		"local_id", attempt.LocalID,
		"voucher_code", attempt.VoucherCode,
		"reason", reason,
		"error", err.Error())

	return AttemptResult{
		LocalID: attempt.LocalID,
		Status:  AttemptError,
		Reason:  reason,
	}
}

// appendLog persists the audit record, once per batch, whatever the mix of
// per-attempt outcomes.
func (s *syncCommandsImpl) appendLog(ctx context.Context, batch SyncBatch, results []AttemptResult, summary SyncSummary) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return errs.Mark(err, ErrSyncLogAppendFailed)
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return errs.Mark(err, ErrSyncLogAppendFailed)
	}

	entry := &shared.SyncLogEntry{
		DeviceID:      batch.DeviceID,
		CorrelationID: batch.CorrelationID,
		UserID:        batch.UserID,
		Payload:       payload,
		Results:       resultsJSON,
		Total:         int32(summary.Total),
		Synced:        int32(summary.Synced),
		Conflicts:     int32(summary.Conflicts),
		Errors:        int32(summary.Errors),
		SyncedAt:      s.clock.Now(),
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, appendErr := tx.SyncLogs().Append(ctx, entry); appendErr != nil {
			return errs.Mark(appendErr, ErrSyncLogAppendFailed)
		}
		return nil
	})
}
