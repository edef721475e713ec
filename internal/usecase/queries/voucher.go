package queries

import (
	"context"

	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type VoucherQueries interface {
	GetByCode(ctx context.Context, code string) (*VoucherView, error)
	ListByStay(ctx context.Context, stayID uuid.UUID) ([]*VoucherListItem, error)
}

type VoucherReadStore interface {
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
	FindByStayID(ctx context.Context, stayID uuid.UUID) ([]*VoucherListItem, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
	clock clock.Clock
}

func NewVoucherQueries(store VoucherReadStore, clock clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{store: store, clock: clock}
}

func (q *voucherQueriesImpl) GetByCode(ctx context.Context, code string) (*VoucherView, error) {
	view, err := q.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	view.Status = effectiveStatus(view.Status, view, q.clock)
	return view, nil
}

func (q *voucherQueriesImpl) ListByStay(ctx context.Context, stayID uuid.UUID) ([]*VoucherListItem, error) {
	items, err := q.store.FindByStayID(ctx, stayID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, item := range items {
		if voucher.Status(item.Status) == voucher.StatusActive &&
			voucher.ReconstructValidityWindow(item.ValidFrom, item.ValidUntil).ExpiredAt(now) {
			item.Status = voucher.StatusExpired.String()
		}
	}
	return items, nil
}

// effectiveStatus reports stored-active vouchers past their window as
// expired; expiry is a read-time classification, never a stored transition.
func effectiveStatus(stored string, view *VoucherView, clk clock.Clock) string {
	if voucher.Status(stored) != voucher.StatusActive {
		return stored
	}
	window := voucher.ReconstructValidityWindow(view.ValidFrom, view.ValidUntil)
	if window.ExpiredAt(clk.Now()) {
		return voucher.StatusExpired.String()
	}
	return stored
}
