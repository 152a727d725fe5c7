package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	investmentUseCase "github.com/tonsuimining/platform/internal/domain/usecase/investment"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/dto"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/middleware"
)

// InvestmentHandler handles the plan catalog and investment stakes
type InvestmentHandler struct {
	investmentService *investmentUseCase.Service
	timeProvider      coreport.TimeProvider
	logger            coreport.Logger
}

// NewInvestmentHandler creates a new investment handler instance
func NewInvestmentHandler(
	investmentService *investmentUseCase.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		timeProvider:      timeProvider,
		logger:            logger,
	}
}

// Plans handles GET /plans, listing active plans only
func (h *InvestmentHandler) Plans(c *gin.Context) {
	plans, err := h.investmentService.GetPlans(c.Request.Context(), true)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.NewPlanResponse(p))
	}
	c.JSON(http.StatusOK, dto.OK("", out))
}

// Create handles POST /investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	inv, err := h.investmentService.Create(c.Request.Context(), middleware.UserID(c), req.PlanID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Investment created", dto.NewInvestmentResponse(inv, h.timeProvider.Now())))
}

// ListMine handles GET /investments, scoped to the authenticated user
func (h *InvestmentHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)
	filter := persistence.InvestmentFilter{
		UserID: &userID,
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	investments, total, err := h.investmentService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := h.timeProvider.Now()
	items := make([]dto.InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		items = append(items, dto.NewInvestmentResponse(inv, now))
	}

	c.JSON(http.StatusOK, dto.OK("", dto.PagedData{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// ListAll handles GET /admin/investments with optional user and status filters
func (h *InvestmentHandler) ListAll(c *gin.Context) {
	filter := persistence.InvestmentFilter{
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}
	if raw := queryInt(c, "userId", 0); raw > 0 {
		userID := uint64(raw)
		filter.UserID = &userID
	}

	investments, total, err := h.investmentService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := h.timeProvider.Now()
	items := make([]dto.InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		items = append(items, dto.NewInvestmentResponse(inv, now))
	}

	c.JSON(http.StatusOK, dto.OK("", dto.PagedData{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// AllPlans handles GET /admin/plans, including deactivated plans
func (h *InvestmentHandler) AllPlans(c *gin.Context) {
	plans, err := h.investmentService.GetPlans(c.Request.Context(), false)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.NewPlanResponse(p))
	}
	c.JSON(http.StatusOK, dto.OK("", out))
}

// CreatePlan handles POST /admin/plans
func (h *InvestmentHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	plan, err := h.investmentService.CreatePlan(c.Request.Context(), middleware.UserID(c), investmentUseCase.PlanRequest{
		Name:          req.Name,
		ROIPercentage: req.ROIPercentage,
		DurationDays:  req.DurationDays,
		MinAmount:     req.MinAmount,
		MaxAmount:     req.MaxAmount,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Plan created", dto.NewPlanResponse(plan)))
}

// UpdatePlan handles PUT /admin/plans/:planId, including deactivation
func (h *InvestmentHandler) UpdatePlan(c *gin.Context) {
	planID, ok := pathID(c, "planId")
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	plan, err := h.investmentService.UpdatePlan(c.Request.Context(), middleware.UserID(c), planID, investmentUseCase.PlanUpdate{
		Name:          req.Name,
		ROIPercentage: req.ROIPercentage,
		DurationDays:  req.DurationDays,
		MinAmount:     req.MinAmount,
		MaxAmount:     req.MaxAmount,
		Active:        req.Active,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Plan updated", dto.NewPlanResponse(plan)))
}

// MaturePayouts handles POST /admin/investments/payouts, settling every
// investment that has reached its end date
func (h *InvestmentHandler) MaturePayouts(c *gin.Context) {
	results, err := h.investmentService.MaturePayouts(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.PayoutResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.PayoutResponse{
			InvestmentID: r.InvestmentID,
			UserID:       r.UserID,
			Principal:    r.Principal,
			Profit:       r.Profit,
			NewBalance:   r.NewBalance,
		})
	}

	c.JSON(http.StatusOK, dto.OK("Payout sweep finished", out))
}
