package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tonsuimining/platform/internal/domain/entity"
	domainerr "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/dto"
	"github.com/tonsuimining/platform/internal/infrastructure/auth"
)

// Context keys for the authenticated identity
const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// AuthRequired validates the bearer token and stores the caller identity in
// the request context. Every protected route derives the acting user from
// here, never from request parameters.
func AuthRequired(tokens *auth.TokenManager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(
				domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				"Missing authorization header",
			))
			return
		}

		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(
				domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				"Invalid authorization format",
			))
			return
		}

		claims, err := tokens.Parse(header[len(prefix):])
		if err != nil {
			logger.Debug("Token rejected", map[string]any{
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(
				domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				"Invalid or expired token",
			))
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// AdminRequired gates a route to admin accounts. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(
				domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				"Authentication required",
			))
			return
		}
		if role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error(
				domainerr.ErrorCode(domainerr.ErrForbidden),
				"Admin access required",
			))
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user ID (must be used after AuthRequired)
func UserID(c *gin.Context) uint64 {
	v, _ := c.Get(ctxUserID)
	if v == nil {
		return 0
	}
	return v.(uint64)
}

// Role returns the authenticated role (must be used after AuthRequired)
func Role(c *gin.Context) string {
	v, _ := c.Get(ctxRole)
	if v == nil {
		return ""
	}
	return v.(string)
}
