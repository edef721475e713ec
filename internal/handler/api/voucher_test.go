//go:build unit

package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/handler/api"
	resdto "hotel-voucher-api/internal/handler/dto/response"
	"hotel-voucher-api/internal/infra"
	"hotel-voucher-api/internal/pkg/qrcode"
	"hotel-voucher-api/internal/usecase/commands"
	"hotel-voucher-api/internal/usecase/queries"
	"hotel-voucher-api/tests/common/builder"
	"hotel-voucher-api/tests/common/httptest"
	"hotel-voucher-api/tests/common/testutil"
	commandsmock "hotel-voucher-api/tests/mock/commands"
	queriesmock "hotel-voucher-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockVoucherQueries
	handler      *api.VoucherHandler
	actorID      uuid.UUID
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewVoucherHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: inject the authenticated actor
	authed := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
	}

	s.router.POST("/stays/:id/vouchers", authed, s.handler.EmitVouchers)
	s.router.GET("/stays/:id/vouchers", authed, s.handler.ListStayVouchers)
	s.router.POST("/vouchers/validate", authed, s.handler.Validate)
	s.router.POST("/vouchers/:code/redeem", authed, s.handler.Redeem)
	s.router.POST("/vouchers/:code/cancel", authed, s.handler.Cancel)
	s.router.GET("/vouchers/:code", authed, s.handler.GetVoucher)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func (s *VoucherHandlerTestSuite) TestEmitVouchers() {
	stayID := uuid.New()
	url := fmt.Sprintf("/stays/%s/vouchers", stayID)

	reqBody := map[string]any{
		"valid_from":  "2025-07-01",
		"valid_until": "2025-07-03",
		"unit_count":  3,
	}

	s.Run("success: returns 201 with issued vouchers", func() {
		issued := make([]commands.IssuedVoucher, 3)
		for i := range issued {
			id := uuid.New()
			code := fmt.Sprintf("HPN-2025-%04d", i+1)
			issued[i] = commands.IssuedVoucher{
				ID:        id,
				Code:      code,
				Signature: "sig",
				QRPayload: qrcode.Encode(qrcode.Payload{VoucherID: id, Code: code, StayID: stayID}),
			}
		}

		s.mockCommands.EXPECT().Emit(gomock.Any(), commands.EmitParams{
			StayID:     stayID,
			ValidFrom:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			UnitCount:  3,
			Actor:      s.actorID,
		}).Return(&commands.EmitResult{StayID: stayID, Vouchers: issued}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.EmitVouchersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(stayID, response.StayID)
		s.Require().Len(response.Vouchers, 3)
		s.Equal("HPN-2025-0001", response.Vouchers[0].Code)
		s.NotEmpty(response.Vouchers[0].QRPayload)
	})

	s.Run("success: omitted unit_count issues a single voucher", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("unit_count", nil))

		s.mockCommands.EXPECT().Emit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.EmitParams) (*commands.EmitResult, error) {
				s.Equal(1, params.UnitCount)
				return &commands.EmitResult{StayID: stayID}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing valid_from", mutate: testutil.Field("valid_from", nil)},
			{name: "missing valid_until", mutate: testutil.Field("valid_until", nil)},
			{name: "unit_count zero", mutate: testutil.Field("unit_count", 0)},
			{name: "malformed date", mutate: testutil.Field("valid_from", "07/01/2025")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 404 when stay does not exist", func() {
		s.mockCommands.EXPECT().Emit(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStayNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Stay not found")
	})

	s.Run("error: 400 when window is outside the stay", func() {
		s.mockCommands.EXPECT().Emit(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "outside the stay")
	})

	s.Run("error: 400 for malformed stay ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/stays/not-a-uuid/vouchers", reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *VoucherHandlerTestSuite) TestValidate() {
	url := "/vouchers/validate"
	vb := builder.NewVoucherBuilder()

	s.Run("success: valid voucher by code", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), vb.Code, gomock.Nil()).
			Return(&commands.ValidateResult{Valid: true, Voucher: vb.BuildSnapshot()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": vb.Code}, "")

		var response resdto.ValidateVoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Require().NotNil(response.Voucher)
		s.Equal(vb.Code, response.Voucher.Code)
	})

	s.Run("success: resolves code from qr_payload", func() {
		payload := qrcode.Encode(qrcode.Payload{VoucherID: vb.ID, Code: vb.Code, StayID: vb.StayID})

		s.mockCommands.EXPECT().Validate(gomock.Any(), vb.Code, gomock.Nil()).
			Return(&commands.ValidateResult{Valid: true, Voucher: vb.BuildSnapshot()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"qr_payload": payload}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: invalid voucher is 200 with classified reason", func() {
		redeemed := builder.NewVoucherBuilder().
			AsRedeemed(time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC), uuid.New(), "TERM-01")

		s.mockCommands.EXPECT().Validate(gomock.Any(), redeemed.Code, gomock.Nil()).
			Return(&commands.ValidateResult{
				Valid:   false,
				Reason:  voucher.ReasonAlreadyRedeemed,
				Voucher: redeemed.BuildSnapshot(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": redeemed.Code}, "")

		var response resdto.ValidateVoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal("ALREADY_REDEEMED", response.Reason)
	})

	s.Run("error: 400 for malformed qr payload", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"qr_payload": "garbage"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Malformed QR payload")
	})

	s.Run("error: 400 when neither code nor qr_payload given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "HPN-2025-9999", gomock.Nil()).
			Return(nil, commands.ErrVoucherNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "HPN-2025-9999"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Voucher not found")
	})
}

func (s *VoucherHandlerTestSuite) TestRedeem() {
	code := "HPN-2025-0001"
	url := "/vouchers/" + code + "/redeem"
	cafeteriaID := uuid.New()
	reqBody := map[string]any{"cafeteria_id": cafeteriaID, "device_id": "TERM-01"}

	s.Run("success: returns 200 with redemption metadata", func() {
		now := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)
		voucherID := uuid.New()

		s.mockCommands.EXPECT().Redeem(gomock.Any(), commands.RedeemParams{
			Code:        code,
			CafeteriaID: cafeteriaID,
			DeviceID:    "TERM-01",
			Actor:       s.actorID,
		}).Return(&commands.RedeemResult{
			VoucherID:   voucherID,
			Code:        code,
			RedeemedAt:  now,
			CafeteriaID: cafeteriaID,
			DeviceID:    "TERM-01",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RedeemVoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(voucherID, response.VoucherID)
		s.Equal(code, response.Code)
	})

	s.Run("conflict: 409 carries the winner's redemption", func() {
		firstAt := time.Date(2025, 7, 2, 11, 0, 0, 0, time.UTC)
		current := builder.NewVoucherBuilder().
			WithCode(code).
			AsRedeemed(firstAt, uuid.New(), "TERM-99")

		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(nil, &commands.ConflictError{
				Reason:  voucher.ReasonAlreadyRedeemed,
				Current: current.BuildSnapshot(),
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Require().Equal(http.StatusConflict, rec.Code)

		var response resdto.ConflictResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("ALREADY_REDEEMED", response.Reason)
		s.Require().NotNil(response.Current)
		s.Equal("redeemed", response.Current.Status)
		s.Equal("TERM-99", *response.Current.DeviceID)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrVoucherNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing cafeteria_id", mutate: testutil.Field("cafeteria_id", nil)},
			{name: "missing device_id", mutate: testutil.Field("device_id", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *VoucherHandlerTestSuite) TestCancel() {
	code := "HPN-2025-0001"
	url := "/vouchers/" + code + "/cancel"
	reqBody := map[string]any{"reason": "guest checkout"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), code, "guest checkout", s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("conflict: 409 when already redeemed", func() {
		current := builder.NewVoucherBuilder().
			WithCode(code).
			AsRedeemed(time.Date(2025, 7, 2, 11, 0, 0, 0, time.UTC), uuid.New(), "TERM-01")

		s.mockCommands.EXPECT().Cancel(gomock.Any(), code, "guest checkout", s.actorID).
			Return(&commands.ConflictError{
				Reason:  voucher.ReasonAlreadyRedeemed,
				Current: current.BuildSnapshot(),
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Require().Equal(http.StatusConflict, rec.Code)

		var response resdto.ConflictResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("ALREADY_REDEEMED", response.Reason)
	})

	s.Run("error: 400 when reason missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *VoucherHandlerTestSuite) TestGetVoucher() {
	vb := builder.NewVoucherBuilder()
	url := "/vouchers/" + vb.Code

	s.Run("success: returns the voucher view", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), vb.Code).
			Return(vb.BuildView("山田太郎"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(vb.Code, response.Code)
		s.Equal("山田太郎", response.GuestName)
		s.NotEmpty(response.QRPayload)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), vb.Code).
			Return(nil, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Voucher not found")
	})
}

func (s *VoucherHandlerTestSuite) TestListStayVouchers() {
	stayID := uuid.New()
	url := fmt.Sprintf("/stays/%s/vouchers", stayID)

	s.Run("success: returns list items", func() {
		first := builder.NewVoucherBuilder().WithStayID(stayID).WithCode("HPN-2025-0001").BuildListItem()
		second := builder.NewVoucherBuilder().WithStayID(stayID).WithCode("HPN-2025-0002").BuildListItem()

		s.mockQueries.EXPECT().ListByStay(gomock.Any(), stayID).
			Return([]*queries.VoucherListItem{&first, &second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.VoucherListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("HPN-2025-0001", response[0].Code)
	})

	s.Run("error: 400 for malformed stay ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stays/not-a-uuid/vouchers", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
