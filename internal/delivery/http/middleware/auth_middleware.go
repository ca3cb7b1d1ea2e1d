package middleware

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth accepts HS256 bearer tokens carrying role=admin.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			response.Abort(c, http.StatusServiceUnavailable, "Admin access is not configured")
			return
		}

		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			response.Abort(c, http.StatusUnauthorized, "Bearer token required")
			return
		}

		claims, err := auth.ParseAdminToken(secret, tokenString)
		if err != nil {
			logger.Log.Warn("admin token rejected", "error", err, "ip", c.ClientIP())
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if claims.Role != domain.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "Admin role required")
			return
		}

		c.Set(string(domain.KeyAdminSubject), claims.Subject)
		c.Set(string(domain.KeyAdminRole), claims.Role)
		c.Next()
	}
}
