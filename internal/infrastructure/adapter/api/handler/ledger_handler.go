package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tonsuimining/platform/internal/domain/entity"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	ledgerUseCase "github.com/tonsuimining/platform/internal/domain/usecase/ledger"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/dto"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler handles deposit/withdrawal submission and the admin
// approval and adjustment surface
type LedgerHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// SubmitDeposit handles POST /transactions/deposit
func (h *LedgerHandler) SubmitDeposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	txn, err := h.ledgerService.SubmitDeposit(c.Request.Context(), middleware.UserID(c), req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Deposit submitted for review", dto.NewTransactionResponse(txn)))
}

// SubmitWithdrawal handles POST /transactions/withdrawal
func (h *LedgerHandler) SubmitWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	txn, err := h.ledgerService.SubmitWithdrawal(c.Request.Context(), middleware.UserID(c), req.Amount, req.Pin)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Withdrawal submitted for review", dto.NewTransactionResponse(txn)))
}

// ListMine handles GET /transactions, scoped to the authenticated user
func (h *LedgerHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)
	filter := persistence.TransactionFilter{
		UserID: &userID,
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	transactions, total, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.PagedData{
		Items: dto.NewTransactionResponses(transactions),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// ListAll handles GET /admin/transactions with optional user scoping
func (h *LedgerHandler) ListAll(c *gin.Context) {
	filter := persistence.TransactionFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}
	if raw := queryInt(c, "userId", 0); raw > 0 {
		userID := uint64(raw)
		filter.UserID = &userID
	}

	transactions, total, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.PagedData{
		Items: dto.NewTransactionResponses(transactions),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// Process handles POST /admin/transactions/:transactionId/process
func (h *LedgerHandler) Process(c *gin.Context) {
	transactionID, ok := pathID(c, "transactionId")
	if !ok {
		return
	}

	var req dto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.ledgerService.ProcessTransaction(
		c.Request.Context(),
		middleware.UserID(c),
		transactionID,
		entity.ProcessAction(req.Action),
		req.Note,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Transaction "+string(result.NewStatus), dto.ProcessResponse{
		TransactionID: result.TransactionID,
		Status:        string(result.NewStatus),
		NewBalance:    result.NewBalance,
	}))
}

// Adjust handles POST /admin/users/:userId/adjust
func (h *LedgerHandler) Adjust(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.ledgerService.AdjustBalance(
		c.Request.Context(),
		middleware.UserID(c),
		userID,
		req.Amount,
		ledgerUseCase.AdjustmentType(req.Type),
		req.Note,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Balance adjusted", dto.AdjustResponse{
		TransactionID: result.TransactionID,
		NewBalance:    result.NewBalance,
	}))
}
