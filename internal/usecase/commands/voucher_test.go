//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/pkg/clock"
	"hotel-voucher-api/internal/pkg/qrcode"
	"hotel-voucher-api/internal/pkg/signature"
	"hotel-voucher-api/internal/usecase/commands"
	"hotel-voucher-api/internal/usecase/shared"
	"hotel-voucher-api/tests/common/builder"
	sharedmock "hotel-voucher-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockVouchers *sharedmock.MockVoucherRepository
	signer       *signature.Signer
	clock        *clock.MockClock
	commands     commands.VoucherCommands
}

func (s *VoucherCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockVouchers = sharedmock.NewMockVoucherRepository(s.mockCtrl)

	s.signer = signature.NewSigner("test-signing-secret")
	s.clock = clock.NewMockClock(time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewVoucherCommands(
		s.mockUoW,
		s.signer,
		voucher.NewCodeGenerator("HPN", 4),
		s.clock,
	)
}

func (s *VoucherCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherCommandsSuite(t *testing.T) {
	suite.Run(t, new(VoucherCommandsTestSuite))
}

// expectWithin routes the transactional closure straight to the mock Tx.
func (s *VoucherCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func (s *VoucherCommandsTestSuite) TestEmit() {
	stay := builder.NewStayBuilder()
	params := commands.EmitParams{
		StayID:     stay.ID,
		ValidFrom:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		UnitCount:  3,
		Actor:      uuid.New(),
	}

	s.Run("success: 3枚を連番で発行する", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().StayByID(gomock.Any(), stay.ID).Return(stay.BuildSnapshot(), nil)

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers).AnyTimes()

		seq := int64(0)
		s.mockVouchers.EXPECT().NextSequence(gomock.Any(), 2025).
			DoAndReturn(func(context.Context, int) (int64, error) {
				seq++
				return seq, nil
			}).Times(3)

		var inserted []*voucher.Voucher
		s.mockVouchers.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), s.clock.Now()).
			DoAndReturn(func(_ context.Context, vs []*voucher.Voucher, _ time.Time) error {
				inserted = vs
				return nil
			})

		result, err := s.commands.Emit(context.Background(), params)
		s.Require().NoError(err)
		s.Require().Len(result.Vouchers, 3)
		s.Len(inserted, 3)

		wantCodes := []string{"HPN-2025-0001", "HPN-2025-0002", "HPN-2025-0003"}
		for i, issued := range result.Vouchers {
			s.Equal(wantCodes[i], issued.Code)
			s.True(s.signer.Verify(issued.Code, params.ValidFrom, params.ValidUntil, stay.ID, issued.Signature))
			s.Equal(qrcode.Encode(qrcode.Payload{
				VoucherID: issued.ID,
				Code:      issued.Code,
				StayID:    stay.ID,
			}), issued.QRPayload)
		}
	})

	s.Run("error: 滞在が存在しない", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().StayByID(gomock.Any(), stay.ID).
			Return(nil, infra.WrapRepoErr("stay not found", nil, infra.KindNotFound))

		_, err := s.commands.Emit(context.Background(), params)
		s.ErrorIs(err, commands.ErrStayNotFound)
	})

	s.Run("error: 有効期間が滞在期間の外", func() {
		outside := params
		outside.ValidUntil = time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC)

		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().StayByID(gomock.Any(), stay.ID).Return(stay.BuildSnapshot(), nil)

		_, err := s.commands.Emit(context.Background(), outside)
		s.ErrorIs(err, commands.ErrInvalidDateRange)
	})

	s.Run("error: from >= until", func() {
		inverted := params
		inverted.ValidFrom = params.ValidUntil
		inverted.ValidUntil = params.ValidFrom

		_, err := s.commands.Emit(context.Background(), inverted)
		s.ErrorIs(err, commands.ErrInvalidDateRange)
	})

	s.Run("error: 枚数が1未満", func() {
		zero := params
		zero.UnitCount = 0

		_, err := s.commands.Emit(context.Background(), zero)
		s.ErrorIs(err, commands.ErrInvalidUnitCount)
	})

	s.Run("error: 連番採番の失敗でロールバック", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().StayByID(gomock.Any(), stay.ID).Return(stay.BuildSnapshot(), nil)

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().NextSequence(gomock.Any(), 2025).
			Return(int64(0), errors.New("sequence unavailable"))

		_, err := s.commands.Emit(context.Background(), params)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *VoucherCommandsTestSuite) TestValidate() {
	vb := builder.NewVoucherBuilder()
	goodSig := s.signer.Sign(vb.Code, vb.ValidFrom, vb.ValidUntil, vb.StayID)
	vb.WithSignature(goodSig)

	s.Run("success: 署名付きで有効", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), vb.Code).Return(vb.BuildSnapshot(), nil)

		result, err := s.commands.Validate(context.Background(), vb.Code, &goodSig)
		s.Require().NoError(err)
		s.True(result.Valid)
		s.Require().NotNil(result.Voucher)
		s.Equal(vb.Code, result.Voucher.Code)
	})

	s.Run("success: 署名省略時は状態のみ検証", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), vb.Code).Return(vb.BuildSnapshot(), nil)

		result, err := s.commands.Validate(context.Background(), vb.Code, nil)
		s.Require().NoError(err)
		s.True(result.Valid)
	})

	s.Run("invalid: 署名不一致", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), vb.Code).Return(vb.BuildSnapshot(), nil)

		bad := "0000000000000000000000000000000000000000000000000000000000000000"
		result, err := s.commands.Validate(context.Background(), vb.Code, &bad)
		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(voucher.ReasonInvalidSignature, result.Reason)
	})

	s.Run("invalid: 引換済みでも署名検証が先", func() {
		redeemedAt := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
		redeemed := builder.NewVoucherBuilder().
			WithCode(vb.Code).
			WithSignature(goodSig).
			AsRedeemed(redeemedAt, uuid.New(), "TERM-01")
		redeemed.StayID = vb.StayID

		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), vb.Code).Return(redeemed.BuildSnapshot(), nil)

		bad := "ffff"
		result, err := s.commands.Validate(context.Background(), vb.Code, &bad)
		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(voucher.ReasonInvalidSignature, result.Reason)
	})

	s.Run("invalid: 引換済み", func() {
		redeemed := builder.NewVoucherBuilder().
			AsRedeemed(time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC), uuid.New(), "TERM-01")

		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), redeemed.Code).Return(redeemed.BuildSnapshot(), nil)

		result, err := s.commands.Validate(context.Background(), redeemed.Code, nil)
		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(voucher.ReasonAlreadyRedeemed, result.Reason)
		s.NotNil(result.Voucher)
	})

	s.Run("invalid: 期限切れ", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), vb.Code).Return(vb.BuildSnapshot(), nil)

		s.clock.Set(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC))
		defer s.clock.Set(time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC))

		result, err := s.commands.Validate(context.Background(), vb.Code, nil)
		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(voucher.ReasonExpired, result.Reason)
	})

	s.Run("error: 存在しないコード", func() {
		s.mockUoW.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), "HPN-2025-9999").
			Return(nil, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))

		_, err := s.commands.Validate(context.Background(), "HPN-2025-9999", nil)
		s.ErrorIs(err, commands.ErrVoucherNotFound)
	})
}

func (s *VoucherCommandsTestSuite) TestRedeem() {
	cafeteriaID := uuid.New()
	params := commands.RedeemParams{
		Code:        "HPN-2025-0001",
		CafeteriaID: cafeteriaID,
		DeviceID:    "TERM-01",
		Actor:       uuid.New(),
	}

	s.Run("success: 条件付き更新に勝った呼び出しが引換を得る", func() {
		now := s.clock.Now()
		won := builder.NewVoucherBuilder().
			WithCode(params.Code).
			AsRedeemed(now, cafeteriaID, params.DeviceID)

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().AtomicRedeem(gomock.Any(), params.Code, cafeteriaID, params.DeviceID, now).
			Return(&shared.RedeemOutcome{Won: true, Voucher: won.BuildSnapshot()}, nil)

		result, err := s.commands.Redeem(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(won.ID, result.VoucherID)
		s.Equal(params.Code, result.Code)
		s.Equal(now, result.RedeemedAt)
		s.Equal(cafeteriaID, result.CafeteriaID)
		s.Equal("TERM-01", result.DeviceID)
	})

	s.Run("conflict: 負けた呼び出しは勝者のメタデータ付きで409相当", func() {
		firstAt := time.Date(2025, 7, 2, 11, 0, 0, 0, time.UTC)
		winnerCafeteria := uuid.New()
		current := builder.NewVoucherBuilder().
			WithCode(params.Code).
			AsRedeemed(firstAt, winnerCafeteria, "TERM-99")

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().AtomicRedeem(gomock.Any(), params.Code, cafeteriaID, params.DeviceID, s.clock.Now()).
			Return(&shared.RedeemOutcome{Won: false, Voucher: current.BuildSnapshot()}, nil)

		_, err := s.commands.Redeem(context.Background(), params)
		s.ErrorIs(err, commands.ErrVoucherConflict)

		var conflict *commands.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(voucher.ReasonAlreadyRedeemed, conflict.Reason)
		s.Require().NotNil(conflict.Current)
		s.Equal(firstAt, *conflict.Current.RedeemedAt)
		s.Equal(winnerCafeteria, *conflict.Current.CafeteriaID)
		s.Equal("TERM-99", *conflict.Current.DeviceID)
	})

	s.Run("conflict: 取消済み", func() {
		current := builder.NewVoucherBuilder().
			WithCode(params.Code).
			AsCancelled("guest checkout")

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().AtomicRedeem(gomock.Any(), params.Code, cafeteriaID, params.DeviceID, s.clock.Now()).
			Return(&shared.RedeemOutcome{Won: false, Voucher: current.BuildSnapshot()}, nil)

		_, err := s.commands.Redeem(context.Background(), params)

		var conflict *commands.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(voucher.ReasonCancelled, conflict.Reason)
	})

	s.Run("conflict: 期限切れのactiveは引換不可", func() {
		expired := builder.NewVoucherBuilder().
			WithCode(params.Code).
			WithWindow(
				time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			)

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().AtomicRedeem(gomock.Any(), params.Code, cafeteriaID, params.DeviceID, s.clock.Now()).
			Return(&shared.RedeemOutcome{Won: false, Voucher: expired.BuildSnapshot()}, nil)

		_, err := s.commands.Redeem(context.Background(), params)

		var conflict *commands.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(voucher.ReasonExpired, conflict.Reason)
	})

	s.Run("error: 存在しないコード", func() {
		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().AtomicRedeem(gomock.Any(), params.Code, cafeteriaID, params.DeviceID, s.clock.Now()).
			Return(nil, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))

		_, err := s.commands.Redeem(context.Background(), params)
		s.ErrorIs(err, commands.ErrVoucherNotFound)
	})
}

func (s *VoucherCommandsTestSuite) TestCancel() {
	code := "HPN-2025-0001"
	actor := uuid.New()

	s.Run("success: activeを取消", func() {
		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().MarkCancelled(gomock.Any(), code, "guest checkout").Return(true, nil)

		err := s.commands.Cancel(context.Background(), code, "guest checkout", actor)
		s.NoError(err)
	})

	s.Run("conflict: 引換済みは取消不可", func() {
		redeemed := builder.NewVoucherBuilder().
			WithCode(code).
			AsRedeemed(time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC), uuid.New(), "TERM-01")

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().MarkCancelled(gomock.Any(), code, "too late").Return(false, nil)
		s.mockTx.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), code).Return(redeemed.BuildSnapshot(), nil)

		err := s.commands.Cancel(context.Background(), code, "too late", actor)

		var conflict *commands.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(voucher.ReasonAlreadyRedeemed, conflict.Reason)
		s.NotNil(conflict.Current.RedeemedAt)
	})

	s.Run("conflict: 二重取消", func() {
		cancelled := builder.NewVoucherBuilder().WithCode(code).AsCancelled("first")

		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().MarkCancelled(gomock.Any(), code, "second").Return(false, nil)
		s.mockTx.EXPECT().Reads().Return(s.mockReads)
		s.mockReads.EXPECT().VoucherByCode(gomock.Any(), code).Return(cancelled.BuildSnapshot(), nil)

		err := s.commands.Cancel(context.Background(), code, "second", actor)

		var conflict *commands.ConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(voucher.ReasonCancelled, conflict.Reason)
	})

	s.Run("error: 存在しないコード", func() {
		s.expectWithin()
		s.mockTx.EXPECT().Vouchers().Return(s.mockVouchers)
		s.mockVouchers.EXPECT().MarkCancelled(gomock.Any(), code, "x").
			Return(false, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))

		err := s.commands.Cancel(context.Background(), code, "x", actor)
		s.ErrorIs(err, commands.ErrVoucherNotFound)
	})
}
