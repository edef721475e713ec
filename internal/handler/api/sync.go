package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "hotel-voucher-api/internal/handler/dto/request"
	"hotel-voucher-api/internal/handler/middleware"
	"hotel-voucher-api/internal/usecase/commands"
	"hotel-voucher-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncCommands commands.SyncCommands
	syncQueries  queries.SyncQueries
}

func NewSyncHandler(syncCommands commands.SyncCommands, syncQueries queries.SyncQueries) *SyncHandler {
	return &SyncHandler{
		syncCommands: syncCommands,
		syncQueries:  syncQueries,
	}
}

// @Summary Sync offline redemptions
// @Description Replay a batch of queued offline redemption attempts
// @Tags sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SyncRedemptionsRequest true "Redemption batch"
// @Success 200 {object} commands.SyncResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /sync/redemptions [post]
func (h *SyncHandler) SyncRedemptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SyncRedemptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.syncCommands.SyncRedemptions(c.Request.Context(), req.ToBatch(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Sync history
// @Description List past sync batches for a device
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param device_id query string true "Device ID"
// @Param limit query int false "Max entries (default 50, cap 200)"
// @Success 200 {array} queries.SyncLogView
// @Failure 400 {object} map[string]string
// @Router /sync/history [get]
func (h *SyncHandler) History(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "device_id is required",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	views, err := h.syncQueries.History(c.Request.Context(), deviceID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Sync statistics
// @Description Aggregate sync outcomes for a device over a time range
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param device_id query string true "Device ID"
// @Param from query string false "Range start (RFC 3339, default 30 days ago)"
// @Param to query string false "Range end (RFC 3339, default now)"
// @Success 200 {object} queries.SyncStatsView
// @Failure 400 {object} map[string]string
// @Router /sync/stats [get]
func (h *SyncHandler) Stats(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "device_id is required",
		})
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "from must be RFC 3339",
			})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "to must be RFC 3339",
			})
			return
		}
		to = parsed
	}

	stats, err := h.syncQueries.Stats(c.Request.Context(), deviceID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
