package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cashdrawer-api/internal/handler/httperr"
	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCollaboratorIDKey = "collaborator_id"
	ctxMerchantIDKey     = "merchant_id"
	ctxRoleKey           = "role"

	accessTokenCookie = "access_token"
)

var (
	errTokenRequired = errs.New("access token required")
	errTokenInvalid  = errs.New("invalid or expired token")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(errTokenInvalid, err.Error()), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCollaboratorIDKey, identity.CollaboratorID)
		c.Set(ctxMerchantIDKey, identity.MerchantID)
		c.Set(ctxRoleKey, identity.Role)
		c.Set("jwt_claims", map[string]any{
			"collaborator_id": identity.CollaboratorID.String(),
			"merchant_id":     identity.MerchantID.String(),
			"role":            identity.Role,
		})
		c.Next()
	}
}

// Bearer header first, then the access token cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	if token, err := c.Cookie(accessTokenCookie); err == nil {
		return token
	}
	return ""
}

func GetCollaboratorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCollaboratorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetMerchantID returns uuid.Nil when the caller has no merchant context; the
// usecases reject that with Forbidden.
func GetMerchantID(c *gin.Context) uuid.UUID {
	v, exists := c.Get(ctxMerchantIDKey)
	if !exists {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
