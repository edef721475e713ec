package shared

import (
	"context"
	"time"

	"hotel-voucher-api/internal/domain/voucher"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Direct access to command reads outside transactions
	Reads() CommandReads
}

type Tx interface {
	Vouchers() VoucherRepository
	SyncLogs() SyncLogRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	StayByID(ctx context.Context, id uuid.UUID) (*StaySnapshot, error)
	VoucherByCode(ctx context.Context, code string) (*VoucherSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// RedeemOutcome is the result of the store-level compare-and-swap. When Won
// is false, Voucher carries the authoritative current row so the losing
// caller can report who redeemed it, when, and from which device.
type RedeemOutcome struct {
	Won     bool
	Voucher *VoucherSnapshot
}

type VoucherRepository interface {
	// NextSequence atomically increments the per-year counter. Contiguous
	// from 1; callable only inside the emit transaction.
	NextSequence(ctx context.Context, year int) (int64, error)
	InsertBatch(ctx context.Context, vouchers []*voucher.Voucher, createdAt time.Time) error
	// AtomicRedeem performs the guarded active→redeemed transition in a
	// single conditional update. Exactly one concurrent caller wins.
	AtomicRedeem(ctx context.Context, code string, cafeteriaID uuid.UUID, deviceID string, now time.Time) (*RedeemOutcome, error)
	// MarkCancelled transitions active→cancelled; reports false when the
	// voucher was not active.
	MarkCancelled(ctx context.Context, code string, reason string) (bool, error)
}

type SyncLogRepository interface {
	Append(ctx context.Context, entry *SyncLogEntry) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
