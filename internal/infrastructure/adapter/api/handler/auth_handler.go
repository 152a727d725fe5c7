package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	userUseCase "github.com/tonsuimining/platform/internal/domain/usecase/user"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/dto"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/tonsuimining/platform/internal/infrastructure/auth"
)

// AuthHandler handles registration, login and profile reads
type AuthHandler struct {
	userService *userUseCase.Service
	tokens      *auth.TokenManager
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *userUseCase.Service, tokens *auth.TokenManager, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Account created", dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Login successful", dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}))
}

// Me handles GET /me, returning the authenticated account with live balance
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.NewUserResponse(user)))
}

// UserSecurityLogs handles GET /admin/users/:userId/logs
func (h *AuthHandler) UserSecurityLogs(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	logs, err := h.userService.SecurityLogs(c.Request.Context(), userID, queryInt(c, "limit", 100))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.NewSecurityLogResponses(logs)))
}
