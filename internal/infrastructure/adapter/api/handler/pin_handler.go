package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	pinUseCase "github.com/tonsuimining/platform/internal/domain/usecase/pin"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/dto"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/middleware"
)

// PinHandler handles the withdrawal PIN admin surface and the user's own
// PIN listing
type PinHandler struct {
	pinService   *pinUseCase.Service
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPinHandler creates a new PIN handler instance
func NewPinHandler(pinService *pinUseCase.Service, timeProvider coreport.TimeProvider, logger coreport.Logger) *PinHandler {
	return &PinHandler{
		pinService:   pinService,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Issue handles POST /admin/pins
func (h *PinHandler) Issue(c *gin.Context) {
	var req dto.IssuePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.pinService.Issue(c.Request.Context(), middleware.UserID(c), pinUseCase.IssueRequest{
		UserID:     req.UserID,
		PinLength:  req.PinLength,
		PinCount:   req.PinCount,
		ExpiryDays: req.ExpiryDays,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := h.timeProvider.Now()
	c.JSON(http.StatusCreated, dto.OK("Pins issued", dto.IssuePinResponse{
		UserID:     result.User.ID,
		UserEmail:  result.User.Email,
		Pins:       dto.NewPinResponses(result.Pins, now),
		ExpiryDays: result.ExpiryDays,
		ExpiryDate: result.ExpiryDate,
	}))
}

// Cancel handles POST /admin/pins/:pinId/cancel
func (h *PinHandler) Cancel(c *gin.Context) {
	pinID, ok := pathID(c, "pinId")
	if !ok {
		return
	}

	var req dto.CancelPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	cancelled, err := h.pinService.Cancel(c.Request.Context(), middleware.UserID(c), pinID, req.Notes)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Pin cancelled", dto.NewPinResponse(cancelled, h.timeProvider.Now())))
}

// Delete handles DELETE /admin/pins/:pinId
func (h *PinHandler) Delete(c *gin.Context) {
	pinID, ok := pathID(c, "pinId")
	if !ok {
		return
	}

	deleted, err := h.pinService.Delete(c.Request.Context(), middleware.UserID(c), pinID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Pin deleted", dto.NewPinResponse(deleted, h.timeProvider.Now())))
}

// ListAll handles GET /admin/pins with optional filters
func (h *PinHandler) ListAll(c *gin.Context) {
	filter := persistence.PinFilter{
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}
	if raw := queryInt(c, "userId", 0); raw > 0 {
		userID := uint64(raw)
		filter.UserID = &userID
	}
	if from := parseDate(c.Query("from")); from != nil {
		filter.FromDate = from
	}
	if to := parseDate(c.Query("to")); to != nil {
		filter.ToDate = to
	}

	h.respondList(c, filter)
}

// ListMine handles GET /pins, scoped to the authenticated user
func (h *PinHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)
	filter := persistence.PinFilter{
		UserID: &userID,
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	h.respondList(c, filter)
}

func (h *PinHandler) respondList(c *gin.Context, filter persistence.PinFilter) {
	result, err := h.pinService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.PinListResponse{
		Pins:  dto.NewPinResponses(result.Pins, h.timeProvider.Now()),
		Total: result.Total,
	}
	if result.Settings != nil {
		resp.Settings = &dto.PinSettingsResponse{
			UserID:  result.Settings.UserID,
			Enabled: result.Settings.Enabled,
			MaxPins: result.Settings.MaxPins,
		}
	}

	c.JSON(http.StatusOK, dto.OK("", resp))
}

// parseDate parses a YYYY-MM-DD query value, nil when absent or malformed
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
