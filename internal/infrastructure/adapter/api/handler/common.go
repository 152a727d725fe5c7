package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/dto"
)

// httpStatus maps a domain error to its HTTP status code
func httpStatus(err error) int {
	switch {
	case domainerr.IsValidationError(err),
		domainerr.IsInsufficientBalanceError(err),
		errors.Is(err, domainerr.ErrPinRequired),
		errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsAuthError(err):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsStateConflictError(err),
		errors.Is(err, domainerr.ErrPinExpired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope for a domain error. Server-side
// failures get a generic message; the details stay in the logs.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := httpStatus(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.Error(domainerr.ErrorCode(err), message))
}

// respondBadRequest writes a 400 for malformed request bodies
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.Error(
		domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		"Invalid request format: "+detail,
	))
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.Error(
			domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			"Invalid "+name+" parameter",
		))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
