package api

import (
	"errors"
	"net/http"

	reqdto "hotel-voucher-api/internal/handler/dto/request"
	resdto "hotel-voucher-api/internal/handler/dto/response"
	"hotel-voucher-api/internal/handler/middleware"
	"hotel-voucher-api/internal/pkg/qrcode"
	"hotel-voucher-api/internal/usecase/commands"
	"hotel-voucher-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VoucherHandler struct {
	voucherCommands commands.VoucherCommands
	voucherQueries  queries.VoucherQueries
}

func NewVoucherHandler(voucherCommands commands.VoucherCommands, voucherQueries queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{
		voucherCommands: voucherCommands,
		voucherQueries:  voucherQueries,
	}
}

// @Summary Emit vouchers
// @Description Issue signed single-use vouchers for a stay
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Param request body reqdto.EmitVouchersRequest true "Emission request"
// @Success 201 {object} resdto.EmitVouchersResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stays/{id}/vouchers [post]
func (h *VoucherHandler) EmitVouchers(c *gin.Context) {
	stayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stay ID format",
		})
		return
	}

	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.EmitVouchersRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(stayID, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.voucherCommands.Emit(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Stay not found",
			})
		case errors.Is(err, commands.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Validity window is invalid or outside the stay",
			})
		case errors.Is(err, commands.ErrInvalidUnitCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unit count must be at least 1",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEmitResult(result))
}

// @Summary Validate voucher
// @Description Check a voucher without consuming it
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateVoucherRequest true "Code or scanned QR payload"
// @Success 200 {object} resdto.ValidateVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vouchers/validate [post]
func (h *VoucherHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	code := req.Code
	if req.QRPayload != nil {
		payload, err := qrcode.Decode(*req.QRPayload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Malformed QR payload",
			})
			return
		}
		code = payload.Code
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Either code or qr_payload is required",
		})
		return
	}

	result, err := h.voucherCommands.Validate(c.Request.Context(), code, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVoucherNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Voucher not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidateResult(result))
}

// @Summary Redeem voucher
// @Description Consume a voucher exactly once
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Param request body reqdto.RedeemVoucherRequest true "Redemption context"
// @Success 200 {object} resdto.RedeemVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.ConflictResponse
// @Router /vouchers/{code}/redeem [post]
func (h *VoucherHandler) Redeem(c *gin.Context) {
	code := c.Param("code")

	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.voucherCommands.Redeem(c.Request.Context(), commands.RedeemParams{
		Code:        code,
		CafeteriaID: req.CafeteriaID,
		DeviceID:    req.DeviceID,
		Actor:       actor,
	})
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary Cancel voucher
// @Description Withdraw an active voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Param request body reqdto.CancelVoucherRequest true "Cancellation reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.ConflictResponse
// @Router /vouchers/{code}/cancel [post]
func (h *VoucherHandler) Cancel(c *gin.Context) {
	code := c.Param("code")

	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CancelVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.voucherCommands.Cancel(c.Request.Context(), code, req.Reason, actor); err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get voucher
// @Description Get voucher details and QR payload by code
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vouchers/{code} [get]
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	view, err := h.voucherQueries.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Voucher not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary List stay vouchers
// @Description List all vouchers issued for a stay
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Success 200 {array} resdto.VoucherListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /stays/{id}/vouchers [get]
func (h *VoucherHandler) ListStayVouchers(c *gin.Context) {
	stayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stay ID format",
		})
		return
	}

	items, err := h.voucherQueries.ListByStay(c.Request.Context(), stayID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherListItems(items))
}

// respondLifecycleError maps redeem/cancel failures. State conflicts become
// 409 bodies carrying the authoritative current state.
func (h *VoucherHandler) respondLifecycleError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, resdto.FromConflictError(conflict))
	case errors.Is(err, commands.ErrVoucherNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Voucher not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
