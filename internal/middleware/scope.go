package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shgportal/internal/domain"
)

// ScopeGuard rejects district and block officers whose token does not carry
// the jurisdiction their role requires. It relies on AuthMiddleware.
func ScopeGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := GetJurisdiction(c)
		switch GetRole(c) {
		case domain.RoleDMMU:
			if scope.District == "" {
				abortJSON(c, http.StatusForbidden, "INVALID_JURISDICTION", "district officer has no district")
				return
			}
		case domain.RoleBMMU:
			if scope.District == "" || scope.Block == "" {
				abortJSON(c, http.StatusForbidden, "INVALID_JURISDICTION", "block officer has no block")
				return
			}
		}
		c.Next()
	}
}
