package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shgportal/internal/domain"
	"shgportal/internal/service"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyEmail    = "email"
	ContextKeyRole     = "role"
	ContextKeyDistrict = "district"
	ContextKeyBlock    = "block"
	ContextKeyClaims   = "claims"
)

func abortJSON(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// AuthMiddleware validates the bearer token and injects the user's identity,
// role and jurisdiction into the context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortJSON(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid authorization header")
			return
		}

		claims, err := authService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRole, string(claims.Role))
		c.Set(ContextKeyDistrict, claims.District)
		c.Set(ContextKeyBlock, claims.Block)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole returns middleware that checks the user's role against allowed roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, exists := c.Get(ContextKeyRole)
		if !exists {
			abortJSON(c, http.StatusForbidden, "FORBIDDEN", "role not found in context")
			return
		}

		userRole := domain.UserRole(roleStr.(string))
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		abortJSON(c, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
	}
}

// GetUserID extracts the user ID from the Gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return val.(uuid.UUID), nil
}

// GetRole extracts the user role from the Gin context.
func GetRole(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString(ContextKeyRole))
}

// GetJurisdiction extracts the district/block scope from the Gin context.
func GetJurisdiction(c *gin.Context) domain.Jurisdiction {
	return domain.Jurisdiction{
		District: c.GetString(ContextKeyDistrict),
		Block:    c.GetString(ContextKeyBlock),
	}
}

// GetClaims returns the validated token claims.
func GetClaims(c *gin.Context) (*service.Claims, error) {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, domain.ErrUnauthorized
	}
	return val.(*service.Claims), nil
}
